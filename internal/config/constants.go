package config

import "time"

// Base application details
const AppName = "kite"
const ConfigDirName = "kite"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "kite.log"

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

// UI Layout
const StatusBarHeight = 1
const WelcomeRowDivisor = 3 // welcome text sits at 1/3 of the text area

// Status Bar
const MessageTimeout = 4 * time.Second
const FilenameWidth = 20

// Defaults for [editor]
const DefaultScrollOff = 3
const SystemClipboard = true
const LineNumbers = false
