// Package srcfile carries a loaded source file around by name, keeping its
// lines addressable so diagnostics can show the region around a fault.
package srcfile

import (
	"io/ioutil"
	"strings"
)

// File is a fully read source file.
type File struct {
	Name  string
	Text  string
	lines []string
}

// Load reads the file at path into memory.
func Load(path string) (*File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(data)), nil
}

// New builds a File over in-memory text; the name is used only for
// reporting.
func New(name, text string) *File {
	return &File{Name: name, Text: text, lines: strings.Split(text, "\n")}
}

// Reader returns a named reader over the file's text; consumers that ask
// the reader for a Name get the file's.
func (f *File) Reader() *Reader {
	return &Reader{Reader: strings.NewReader(f.Text), name: f.Name}
}

// NumLines counts the file's lines.
func (f *File) NumLines() int { return len(f.lines) }

// Line returns the 1-based nth line without its trailing newline.
func (f *File) Line(n int) (string, bool) {
	if n < 1 || n > len(f.lines) {
		return "", false
	}
	return f.lines[n-1], true
}

// Reader is a strings.Reader that also carries the file name.
type Reader struct {
	*strings.Reader
	name string
}

// Name reports the file name the reader was built from.
func (r *Reader) Name() string { return r.name }
