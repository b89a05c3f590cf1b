package judge

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce collapses bursts of events (editors often write a file twice).
const debounce = 150 * time.Millisecond

// Watch judges the suites in dir once, then again after every change to a
// suite file, passing each report to fn. It returns when ctx is cancelled
// (with nil) or the watcher fails. Load errors are reported to fn as a nil
// report and do not stop the watch.
func (j *Judge) Watch(ctx context.Context, dir string, fn func(*Report, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("judge: watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("judge: watching %s: %w", dir, err)
	}
	log := j.log.With(zap.String("dir", dir))
	log.Info("watching suites")

	j.runDir(ctx, dir, fn)

	// nil until a change is seen; a nil channel never fires
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, err := FormatOf(ev.Name); err != nil {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("suite changed", zap.String("file", filepath.Base(ev.Name)), zap.String("op", ev.Op.String()))
			fire = time.After(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				log.Warn("event overflow, re-running", zap.Error(err))
				j.runDir(ctx, dir, fn)
				continue
			}
			return fmt.Errorf("judge: watching %s: %w", dir, err)

		case <-fire:
			fire = nil
			j.runDir(ctx, dir, fn)
		}
	}
}

func (j *Judge) runDir(ctx context.Context, dir string, fn func(*Report, error)) {
	suites, err := LoadDir(dir)
	if err != nil {
		j.log.Warn("loading suites", zap.String("dir", dir), zap.Error(err))
		fn(nil, err)
		return
	}
	rep, err := j.Run(ctx, suites...)
	if ctx.Err() != nil {
		return
	}
	fn(rep, err)
}
