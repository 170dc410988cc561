package tai

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/crypto/blake2b"
)

const reloadDebounce = 100 * time.Millisecond

// WatchLeapSecondFile reloads the TOML leap second table at path whenever it changes and hands the
// result to onChange: a table on success, or the load error. It blocks until ctx is done.
//
// The containing directory is watched, so editors that replace the file on save are handled.
// Bursts of events within a short window cause a single reload, and a reload is skipped when the
// content is identical to the last table loaded (or to the file as it was when watching started).
func WatchLeapSecondFile(ctx context.Context, path string, onChange func(*LeapSecondTable, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving leap second file path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating leap second file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching leap second file directory: %w", err)
	}

	var loaded [blake2b.Size256]byte
	if data, readErr := os.ReadFile(abs); readErr == nil {
		loaded = blake2b.Sum256(data)
	}

	// Stopped until the first relevant event arrives.
	debounce := time.NewTimer(reloadDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != abs {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce.Reset(reloadDebounce)
			}

		case <-debounce.C:
			data, readErr := os.ReadFile(abs)
			if readErr != nil {
				onChange(nil, fmt.Errorf("reading leap second file: %w", readErr))
				continue
			}

			digest := blake2b.Sum256(data)
			if digest == loaded {
				continue
			}

			table, loadErr := LoadLeapSecondTable(bytes.NewReader(data))
			if loadErr == nil {
				loaded = digest
			}

			onChange(table, loadErr)

		case werr, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			onChange(nil, fmt.Errorf("watching leap second file: %w", werr))
		}
	}
}

// WatchLeapSecondFile keeps the Converter's table in sync with a TOML file until ctx is done.
// Failed reloads are logged at error level and keep the previous table.
func (c *Converter) WatchLeapSecondFile(ctx context.Context, path string) error {
	return WatchLeapSecondFile(ctx, path, func(table *LeapSecondTable, err error) {
		if err != nil {
			if c.logger != nil {
				c.logger.Error(logMsgReloadFailed, logAttrError, err.Error(), logAttrPath, path)
			}

			return
		}

		_ = c.SetLeapSecondTable(table)
	})
}
