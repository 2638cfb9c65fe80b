package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher watches a drop directory and imports every CSV file that appears
// in it. After a successful import the file is renamed with an ".imported"
// suffix so restarts do not replay it.
type Watcher struct {
	imp     *Importer
	dir     string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher for dir.
func NewWatcher(imp *Importer, dir string) *Watcher {
	return &Watcher{
		imp:  imp,
		dir:  dir,
		done: make(chan struct{}),
	}
}

// Start creates the drop directory if needed, imports any CSV files already
// present, and begins watching for new ones.
func (w *Watcher) Start() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create import directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch import directory: %w", err)
	}
	w.watcher = watcher

	// Pick up files dropped while we were not running
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("failed to read import directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			w.handleFile(filepath.Join(w.dir, entry.Name()))
		}
	}

	go w.loop()
	log.Info().Str("dir", w.dir).Msg("Timetable import watcher started")
	return nil
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	if w.watcher == nil {
		return
	}
	close(w.done)
	if err := w.watcher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close import watcher")
	}
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				w.handleFile(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Import watcher error")
		}
	}
}

func (w *Watcher) handleFile(path string) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return
	}

	if _, err := w.imp.ImportTimetableFile(path); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to import timetable file")
		return
	}

	if err := os.Rename(path, path+".imported"); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Failed to rename imported file")
	}
}

// batchNameFromPath derives the default batch for a file: the base name
// without its extension.
func batchNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
