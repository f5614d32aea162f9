/*
 * Solpp - Semantic analysis for the Solidity++ smart contract language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 100 * time.Millisecond

// watcher calls onChange with the files that changed.
//
// The directories of the files are watched rather than the files themselves,
// so files replaced by editors through a rename are still noticed.
// Changes arriving within the debounce interval are batched.
type watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]string
	debounce  time.Duration
	onChange  func(paths []string)
	log       *logger
}

func newWatcher(
	paths []string,
	debounce time.Duration,
	onChange func(paths []string),
	log *logger,
) (*watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fsWatcher: fsWatcher,
		files:     map[string]string{},
		debounce:  debounce,
		onChange:  onChange,
		log:       log,
	}

	directories := map[string]struct{}{}

	for _, path := range paths {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, err
		}
		w.files[absolutePath] = path

		directory := filepath.Dir(absolutePath)
		if _, ok := directories[directory]; ok {
			continue
		}
		directories[directory] = struct{}{}

		err = fsWatcher.Add(directory)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, err
		}
	}

	return w, nil
}

// run watches until the context is done, then releases the watcher
func (w *watcher) run(ctx context.Context) error {
	defer func() {
		_ = w.fsWatcher.Close()
	}()

	pending := map[string]struct{}{}

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path, ok := w.files[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			pending[path] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.log.error(err)

		case <-timerC:
			timerC = nil

			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			slices.Sort(changed)
			clear(pending)

			w.onChange(changed)
		}
	}
}
