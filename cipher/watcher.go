// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch - reload the key file whenever it is written or replaced
//
// the directory is watched rather than the file so that a file renamed
// over the old one is still seen; runs until shutdown is closed and
// returns at once if there is no key file
func (k *Keyring) Watch(shutdown <-chan struct{}) error {
	if "" == k.file {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		k.log.Errorf("new watcher with error: %s", err)
		return err
	}

	filePath, err := filepath.Abs(filepath.Clean(k.file))
	if nil != err {
		watcher.Close()
		return err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		k.log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return err
	}

	go k.watch(watcher, filePath, shutdown)
	return nil
}

func (k *Keyring) watch(watcher *fsnotify.Watcher, filePath string, shutdown <-chan struct{}) {
	defer watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			k.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(filePath) {
				continue loop
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				k.log.Warnf("key file: %s removed, keeping current keys", filePath)
				continue loop
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := k.Reload(); nil != err {
					k.log.Errorf("reload error: %s", err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			k.log.Errorf("watcher error: %s", err)
		}
	}
	k.log.Info("key file watcher stopped")
}
