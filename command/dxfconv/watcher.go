// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

const (
	watcherLoggerPrefix = "file-watcher"
	changeQueueSize     = 64
	defaultSettleTime   = 500 * time.Millisecond

	reconvertRate  = rate.Limit(0.5) // conversion passes per second
	reconvertBurst = 2
)

// fileWatcher - reports writes to a fixed set of files
//
// the containing directories are watched so that editors which
// replace a file are still seen
type fileWatcher struct {
	log     *logger.L
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	changes chan string
}

func newFileWatcher(inputFiles []string, log *logger.L) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	w := &fileWatcher{
		log:     log,
		watcher: watcher,
		files:   make(map[string]struct{}),
		changes: make(chan string, changeQueueSize),
	}

	directories := make(map[string]struct{})
	for _, f := range inputFiles {
		filePath, err := filepath.Abs(filepath.Clean(f))
		if nil != err {
			watcher.Close()
			return nil, err
		}
		w.files[filePath] = struct{}{}
		directories[filepath.Dir(filePath)] = struct{}{}
	}
	for d := range directories {
		if err := watcher.Add(d); nil != err {
			log.Errorf("watcher add: %q  error: %s", d, err)
			watcher.Close()
			return nil, err
		}
		log.Infof("watching: %q", d)
	}
	return w, nil
}

// Changes - absolute names of changed input files
func (w *fileWatcher) Changes() <-chan string {
	return w.changes
}

// Run - background process forwarding file events until shutdown
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)
			if !w.isWatched(event.Name) {
				continue loop
			}
			if watcherEventFileChange(event) {
				w.sendEvent(filepath.Clean(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

func (w *fileWatcher) isWatched(name string) bool {
	filePath, err := filepath.Abs(filepath.Clean(name))
	if nil != err {
		return false
	}
	_, ok := w.files[filePath]
	return ok
}

func (w *fileWatcher) isChannelFull() bool {
	return len(w.changes) == cap(w.changes)
}

func (w *fileWatcher) sendEvent(name string) {
	if !w.isChannelFull() {
		w.changes <- name
	} else {
		w.log.Warnf("change queue full, discard event for: %q", name)
	}
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

// reconverter - converts changed files once they stop changing
//
// a nil limiter does not restrict the number of conversion passes
type reconverter struct {
	c       *converter
	changes <-chan string
	settle  time.Duration
	limiter *rate.Limiter
	log     *logger.L
}

// Run - background process collecting changes until shutdown
func (r *reconverter) Run(args interface{}, shutdown <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pending := make(map[string]struct{})
	timer := time.NewTimer(r.settle)
	timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case name := <-r.changes:
			pending[name] = struct{}{}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(r.settle)
		case <-timer.C:
			if nil != r.limiter && !r.limiter.Allow() {
				r.log.Debugf("reconvert: rate limited, pending: %d", len(pending))
				timer.Reset(r.settle)
				continue loop
			}
			files := make([]string, 0, len(pending))
			for name := range pending {
				files = append(files, name)
			}
			pending = make(map[string]struct{})
			r.log.Infof("reconvert: %d files", len(files))
			if failures := r.c.convertAll(ctx, files); 0 != failures {
				r.log.Warnf("reconvert: %d failures", failures)
			}
		}
	}
	r.log.Info("stopped")
}
