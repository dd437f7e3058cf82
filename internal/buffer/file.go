// internal/buffer/file.go
package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// maxLineSize caps the scanner token size when reading files.
const maxLineSize = 16 * 1024 * 1024

// Load reads the file at path into a line collection, one Line per physical
// line. A trailing "\r" before each newline is dropped, as bufio.ScanLines
// does. A missing file is not an error: the result is a single empty line
// and exists is false.
func Load(path string) (lines *Lines, exists bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewLines(), false, nil
		}
		return nil, false, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer file.Close()

	ls := &Lines{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		l, err := NewLine(scanner.Text())
		if err != nil {
			return nil, true, fmt.Errorf("error reading file '%s' at line %d: %w", path, lineNo, err)
		}
		ls.lines = append(ls.lines, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, true, fmt.Errorf("error reading file '%s': %w", path, err)
	}
	if len(ls.lines) == 0 {
		ls.lines = append(ls.lines, EmptyLine())
	}
	return ls, true, nil
}

// Write stores every line followed by a single newline at path, creating or
// truncating the file. It returns the number of bytes written. A failure
// midway may leave a partially written file.
func Write(path string, ls *Lines) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not save: %w", err)
	}
	defer f.Close()

	n, err := f.Write(ls.Bytes())
	if err != nil {
		return n, fmt.Errorf("could not write to file: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("could not flush to file: %w", err)
	}
	return n, nil
}
