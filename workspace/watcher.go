package workspace

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultPollInterval is how often a FileWatcher checks modification times.
const DefaultPollInterval = 500 * time.Millisecond

// FileWatcher re-parses a fixed set of files whenever their modification
// time changes and hands the result to a callback. A file that disappears
// is removed from the workspace and reported with a nil *File.
type FileWatcher struct {
	workspace    *Workspace
	paths        []string
	onChange     func(path string, f *File, err error)
	pollInterval time.Duration
	modTimes     map[string]time.Time
	stopCh       chan struct{}
	done         chan struct{}
	stopOnce     sync.Once
	started      atomic.Bool
}

func NewFileWatcher(ws *Workspace, paths []string, onChange func(path string, f *File, err error)) *FileWatcher {
	return &FileWatcher{
		workspace:    ws,
		paths:        paths,
		onChange:     onChange,
		pollInterval: DefaultPollInterval,
		modTimes:     make(map[string]time.Time),
		stopCh:       make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (w *FileWatcher) SetPollInterval(d time.Duration) {
	if d > 0 {
		w.pollInterval = d
	}
}

func (w *FileWatcher) Start() {
	if w.started.CompareAndSwap(false, true) {
		go w.run()
	}
}

// Stop ends polling and waits for the last scan to finish.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	if w.started.Load() {
		<-w.done
	}
}

func (w *FileWatcher) run() {
	defer close(w.done)

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

func (w *FileWatcher) scan() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			if _, known := w.modTimes[path]; known && os.IsNotExist(err) {
				delete(w.modTimes, path)
				w.workspace.RemoveFile(path)
				w.onChange(path, nil, err)
			}
			continue
		}

		lastMod, known := w.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			continue
		}
		w.modTimes[path] = info.ModTime()
		f, err := w.workspace.ScanFile(path)
		w.onChange(path, f, err)
	}
}
