// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates.
//              Watching uses fsnotify on the file's directory with a short
//              debounce so editor write-then-rename sequences trigger a
//              single reload.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation with fsnotify watching

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	ixerror "github.com/danielbradley/IxCompiler/core/error"
	"github.com/danielbradley/IxCompiler/utils/stringx"
)

// debounceInterval is the quiet period after a file event before reloading
const debounceInterval = 100 * time.Millisecond

// StartWatching starts monitoring the configuration file for changes.
// The parent directory is watched rather than the file itself so that
// atomic replace-by-rename saves are still observed.
func (c *Config) StartWatching() error {
	c.mu.Lock()

	if err := stringx.ValidateNotBlank(c.filePath); err != nil {
		c.mu.Unlock()
		return ixerror.Wrap(err, "file path required for watching").
			WithOperation("config.StartWatching")
	}

	if c.watching {
		c.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.mu.Unlock()
		return ixerror.Wrap(err, "failed to create file watcher").
			WithCode(ixerror.CodeConfigError).
			WithOperation("config.StartWatching").
			WithDetail("filePath", c.filePath)
	}

	dir := filepath.Dir(c.filePath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		c.mu.Unlock()
		return ixerror.Wrap(err, "failed to watch config directory").
			WithCode(ixerror.CodeConfigError).
			WithOperation("config.StartWatching").
			WithDetail("directory", dir)
	}

	c.watching = true
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	stopCh := c.stopCh
	doneCh := c.doneCh
	target := filepath.Base(c.filePath)
	c.mu.Unlock()

	go c.watchLoop(watcher, target, stopCh, doneCh)

	return nil
}

// watchLoop processes file system events until stopped
func (c *Config) watchLoop(watcher *fsnotify.Watcher, target string, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer watcher.Close()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-stopCh:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !c.shouldProcessEvent(event, target) {
				continue
			}

			// Collapse rapid event bursts into one reload
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, func() {
				select {
				case <-stopCh:
				default:
					// Reload errors leave the previous data in place;
					// watching continues
					_ = c.reload()
				}
			})

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep watching
		}
	}
}

// shouldProcessEvent reports whether an event concerns the watched file
func (c *Config) shouldProcessEvent(event fsnotify.Event, target string) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return filepath.Base(event.Name) == target
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	c.mu.RLock()
	filePath := c.filePath
	format := c.format
	c.mu.RUnlock()

	content, err := os.ReadFile(filePath)
	if err != nil {
		return ixerror.Wrap(err, "failed to read config file during reload").
			WithCode(ixerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return ixerror.Wrap(err, "failed to parse config file during reload").
			WithCode(ixerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}

	c.data = newData
	if fileInfo, statErr := os.Stat(filePath); statErr == nil {
		c.lastModified = fileInfo.ModTime()
	}

	newConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}

	handlers := make([]ChangeHandler, len(c.watchers))
	copy(handlers, c.watchers)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring and waits for the watch loop to exit
func (c *Config) StopWatching() {
	c.mu.Lock()
	if !c.watching {
		c.mu.Unlock()
		return
	}
	c.watching = false
	stopCh := c.stopCh
	doneCh := c.doneCh
	c.stopCh = nil
	c.doneCh = nil
	c.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
