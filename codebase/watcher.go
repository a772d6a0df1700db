package codebase

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/tliron/commonlog"
)

// FileWatcher polls the source directories and keeps the index in sync
// with the filesystem: new and changed .fs files are rescanned, deleted
// ones drop out of the index. One goroutine, stopped via Stop.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	log          commonlog.Logger
}

func NewFileWatcher(c *Codebase) *FileWatcher {
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		pollInterval: c.Config().WatchInterval(),
		modTimes:     make(map[string]time.Time),
		log:          commonlog.GetLogger("funs.watcher"),
	}
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

// scan walks the source directories once. modTimes is only touched
// here, and run is the only caller, so it needs no lock.
func (w *FileWatcher) scan() {
	current := make(map[string]bool)

	for _, dir := range w.codebase.cfg.SourceDirs {
		root := dir
		if !filepath.IsAbs(root) {
			root = filepath.Join(w.codebase.rootDir, root)
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && (strings.HasPrefix(d.Name(), ".") || w.codebase.cfg.Excluded(d.Name())) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".fs" {
				return nil
			}

			current[path] = true

			info, err := d.Info()
			if err != nil {
				return nil
			}
			lastMod, known := w.modTimes[path]
			if !known || info.ModTime().After(lastMod) {
				w.modTimes[path] = info.ModTime()
				if err := w.codebase.ScanFile(path); err != nil {
					w.log.Errorf("scan %s: %s", path, err.Error())
					return nil
				}
				w.log.Debugf("indexed %s", path)
			}
			return nil
		})
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			w.log.Debugf("removed %s", path)
		}
	}
}
