// Package workspace keeps parsed documents for the language server and the
// file watcher.
package workspace

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dhamidi/tdop/lang"
	"github.com/dhamidi/tdop/lang/parser"
)

type Workspace struct {
	mu    sync.RWMutex
	opts  []lang.Option
	files map[string]*File
}

type File struct {
	Path     string
	Content  []byte
	Program  *parser.Statements
	ParseErr error
}

// Diagnostic is a parse error pinned to a 1-based line. Line is 0 when the
// error carries no position.
type Diagnostic struct {
	Line    int
	Message string
}

// New returns an empty workspace. opts are applied to every parse.
func New(opts ...lang.Option) *Workspace {
	return &Workspace{
		opts:  opts,
		files: make(map[string]*File),
	}
}

func (w *Workspace) ScanFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, content), nil
}

// UpdateFile replaces the content stored for path and re-parses it.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	opts := append([]lang.Option{}, w.opts...)
	opts = append(opts, lang.WithFile(filepath.Base(path)))
	program, err := lang.Parse(context.Background(), content, opts...)

	f := &File{
		Path:     path,
		Content:  content,
		Program:  program,
		ParseErr: err,
	}

	w.mu.Lock()
	w.files[path] = f
	w.mu.Unlock()
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Diagnostics reports the parse error of f, if any. Parsing stops at the
// first error, so there is at most one.
func (f *File) Diagnostics() []Diagnostic {
	if f == nil || f.ParseErr == nil {
		return nil
	}
	line, _ := parser.ErrorLine(f.ParseErr)
	return []Diagnostic{{Line: line, Message: f.ParseErr.Error()}}
}
