package core

import "path/filepath"

// noName is shown for documents that are not bound to a file.
const noName = "[No Name]"

// FilePath binds a document to a file on disk.
type FilePath struct {
	Path    string // path used for I/O
	Display string // name shown to the user
}

func newFilePath(path string) *FilePath {
	return &FilePath{Path: filepath.Clean(path), Display: path}
}

// Filename returns the display name of the bound file, or "[No Name]".
func (d *Document) Filename() string {
	if d.file == nil {
		return noName
	}
	return d.file.Display
}

// FilePath returns the bound path, or "" for an unnamed buffer.
func (d *Document) FilePath() string {
	if d.file == nil {
		return ""
	}
	return d.file.Path
}

// HasFile reports whether the document is bound to a file.
func (d *Document) HasFile() bool {
	return d.file != nil
}

// SetFile binds the document to path. Nothing is written until Save.
func (d *Document) SetFile(path string) {
	d.file = newFilePath(path)
}

// SetUnnamed removes the file binding.
func (d *Document) SetUnnamed() {
	d.file = nil
}
