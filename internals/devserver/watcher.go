package devserver

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

var (
	WatchDirs       = []string{".", "pages", "assets", "components"}
	watchExtensions = map[string]bool{".html": true, ".css": true, ".js": true, ".json": true}
)

const DebounceDelay = 100 * time.Millisecond

// ShouldReload reports whether a change to path warrants a browser reload.
func ShouldReload(path string) bool {
	if strings.Contains(filepath.ToSlash(path), "node_modules") {
		return false
	}
	return watchExtensions[strings.ToLower(filepath.Ext(path))]
}

// Watcher turns bursts of file events under Root into single onChange calls.
type Watcher struct {
	Root     string
	Dirs     []string
	Delay    time.Duration
	OnChange func()

	fsw *fsnotify.Watcher
}

func NewWatcher(root string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{Root: root, Dirs: WatchDirs, Delay: DebounceDelay, OnChange: onChange, fsw: fsw}
	for _, d := range w.Dirs {
		dir := filepath.Join(root, d)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		if err := w.addTree(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
		log.Printf("[INFO] 👀 watching %s", dir)
	}
	return w, nil
}

// addTree watches dir and every subdirectory except node_modules and dot dirs.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (name == "node_modules" || strings.HasPrefix(name, ".")) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// Run blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	debounced := debounce.New(w.Delay)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() && !strings.Contains(ev.Name, "node_modules") {
					_ = w.addTree(ev.Name)
					continue
				}
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			if ShouldReload(ev.Name) {
				debounced(w.OnChange)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] watcher: %v", err)
		}
	}
}
