package theme

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nnchaudhuri/skyclock/sky"
)

// Watcher reloads the theme file while the clock runs. Events are
// debounced because editors often fire several writes per save
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func(sky.ColorSequence)
	done     chan struct{}
}

// Watch starts watching path, invoking onChange with the freshly loaded
// sequence after each write. Watching the directory rather than the file
// survives rename-style saves
func Watch(path string, onChange func(sky.ColorSequence)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher
func (w *Watcher) Close() {
	close(w.done)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	const debounce = 200 * time.Millisecond
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			pending = time.After(debounce)
		case <-pending:
			pending = nil
			seq, _ := Load(w.path) // defects already fall back to defaults
			w.onChange(seq)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
