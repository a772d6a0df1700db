// Package codebase maintains an in-memory index of the .fs files under
// a root directory. Every file is parsed on entry and the index keeps
// the results: content, parse tree, typed declarations, diagnostics.
// The LSP server and the HTTP API read from the index; the file watcher
// and the LSP document handlers write to it.
package codebase

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dhamidi/funs/ast"
	"github.com/dhamidi/funs/config"
	"github.com/dhamidi/funs/diag"
	"github.com/dhamidi/funs/parser"
)

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	cfg     *config.Config
	files   map[string]*FileInfo
}

// FileInfo holds everything the index derives from one file in a
// single pass. Tree is nil only when the parse aborted internally; the
// abort is then part of Diags.
type FileInfo struct {
	Path    string
	Content []byte
	Source  *parser.Source
	Tree    *parser.Node
	File    *ast.File
	Diags   []diag.Diagnostic
}

// Errors counts the error-severity diagnostics of the file.
func (f *FileInfo) Errors() int {
	n := 0
	for _, d := range f.Diags {
		if d.Severity == diag.SeverityError {
			n++
		}
	}
	return n
}

func New(rootDir string, cfg *config.Config) *Codebase {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Codebase{
		rootDir: rootDir,
		cfg:     cfg,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Config() *config.Config {
	return c.cfg
}

// ScanAll walks the configured source directories under the root and
// indexes every .fs file. Directories named in the exclude list are
// skipped whole. Unreadable files are skipped, not fatal.
func (c *Codebase) ScanAll() error {
	for _, dir := range c.cfg.SourceDirs {
		root := dir
		if !filepath.IsAbs(root) {
			root = filepath.Join(c.rootDir, root)
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && c.cfg.Excluded(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ".fs" {
				c.ScanFile(path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ScanFile reads the file from disk and indexes it.
func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile reparses content and replaces the index entry for path.
// The content need not match what is on disk: the LSP feeds unsaved
// editor buffers through here.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	info := index(path, content)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	return nil
}

// index runs the whole pipeline for one file. It takes no lock: the
// parse is the expensive part and needs none.
func index(path string, content []byte) *FileInfo {
	src := parser.NewSource(path, string(content))
	p := parser.ParseFile(src)
	diags := diag.Collect(p)

	tree, _ := p.Finish()
	var file *ast.File
	if tree != nil {
		file = ast.FromTree(path, tree)
		diags = append(diags, diag.Check(file)...)
		diag.Sort(diags)
	}

	return &FileInfo{
		Path:    path,
		Content: content,
		Source:  src,
		Tree:    tree,
		File:    file,
		Diags:   diags,
	}
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the indexed paths in sorted order.
func (c *Codebase) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of indexed files.
func (c *Codebase) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files)
}
