package batch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the source must stay quiet before a re-render. Editors
// often write a file in several steps.
const settle = 200 * time.Millisecond

// Hooks are called around every run of Watch
type Hooks struct {
	BeforeRun func()
	AfterRun  func(Summary, error)
}

// Watch renders source into outDir, then renders it again every time the
// file changes, until ctx is done. The directory is watched rather than the
// file so that editors replacing the file are noticed.
func (d *Driver) Watch(ctx context.Context, source string, outDir string, hooks Hooks) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	source = filepath.Clean(source)
	if err := w.Add(filepath.Dir(source)); err != nil {
		return err
	}

	run := func() {
		if hooks.BeforeRun != nil {
			hooks.BeforeRun()
		}
		summary, err := d.Render(source, outDir)
		if hooks.AfterRun != nil {
			hooks.AfterRun(summary, err)
		}
	}
	run()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			d.Log.Err("watching %s: %v", source, err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != source {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) > 0 {
				timer.Reset(settle)
			}
		case <-timer.C:
			run()
		}
	}
}
