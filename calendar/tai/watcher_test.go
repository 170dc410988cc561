package tai_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar/tai"
	. "github.com/sunangle/millennium-calendar-go/testutil/helper" //nolint:revive
)

const (
	twoLeapSeconds = "known_as_of = 1973-06-30\nleap_days = [1972-06-30, 1972-12-31]\n"
	oneLeapSecond  = "known_as_of = 1973-06-30\nleap_days = [1972-06-30]\n"
	watchTimeout   = 5 * time.Second
)

type reload struct {
	table *tai.LeapSecondTable
	err   error
}

func Test_WatchLeapSecondFile_ReloadsOnWrite(t *testing.T) {
	// setup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "leap_seconds.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoLeapSeconds), 0o600))

	reloads := make(chan reload, 8)
	done := make(chan error, 1)

	go func() {
		done <- tai.WatchLeapSecondFile(ctx, path, func(table *tai.LeapSecondTable, err error) {
			reloads <- reload{table: table, err: err}
		})
	}()

	// arrange: give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	// act
	require.NoError(t, os.WriteFile(path, []byte(oneLeapSecond), 0o600))

	// assert
	select {
	case r := <-reloads:
		require.NoError(t, r.err)
		assert.Equal(t, 1, r.table.Len())
	case <-time.After(watchTimeout):
		t.Fatal("no reload after the file was rewritten")
	}

	// act
	require.NoError(t, os.WriteFile(path, []byte("known_as_of = ["), 0o600))

	// assert
	select {
	case r := <-reloads:
		assert.ErrorIs(t, r.err, tai.ErrInvalidLeapSecondTable)
		assert.Nil(t, r.table)
	case <-time.After(watchTimeout):
		t.Fatal("no reload after the file was broken")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(watchTimeout):
		t.Fatal("watcher did not stop after cancel")
	}
}

func Test_WatchLeapSecondFile_IgnoresOtherFiles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	path := filepath.Join(dir, "leap_seconds.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoLeapSeconds), 0o600))

	reloads := make(chan reload, 8)

	go func() {
		_ = tai.WatchLeapSecondFile(ctx, path, func(table *tai.LeapSecondTable, err error) {
			reloads <- reload{table: table, err: err}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte(oneLeapSecond), 0o600))

	select {
	case <-reloads:
		t.Fatal("reloaded for a file that is not watched")
	case <-time.After(500 * time.Millisecond):
	}
}

func Test_WatchLeapSecondFile_SkipsUnchangedContent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "leap_seconds.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoLeapSeconds), 0o600))

	reloads := make(chan reload, 8)

	go func() {
		_ = tai.WatchLeapSecondFile(ctx, path, func(table *tai.LeapSecondTable, err error) {
			reloads <- reload{table: table, err: err}
		})
	}()

	time.Sleep(100 * time.Millisecond)

	// act: same bytes again
	require.NoError(t, os.WriteFile(path, []byte(twoLeapSeconds), 0o600))

	// assert
	select {
	case <-reloads:
		t.Fatal("reloaded although the content did not change")
	case <-time.After(500 * time.Millisecond):
	}

	// act: real change
	require.NoError(t, os.WriteFile(path, []byte(oneLeapSecond), 0o600))

	// assert
	select {
	case r := <-reloads:
		require.NoError(t, r.err)
		assert.Equal(t, 1, r.table.Len())
	case <-time.After(watchTimeout):
		t.Fatal("no reload after the file was rewritten")
	}
}

func Test_WatchLeapSecondFile_MissingDirectory(t *testing.T) {
	err := tai.WatchLeapSecondFile(context.Background(), filepath.Join(t.TempDir(), "missing", "leap.toml"), func(*tai.LeapSecondTable, error) {})

	assert.Error(t, err)
}

func Test_Converter_WatchLeapSecondFile(t *testing.T) {
	// setup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, logHandler := NewTestLogger(false)
	conv := newConverter(t, tai.WithLogger(logger))

	path := filepath.Join(t.TempDir(), "leap_seconds.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoLeapSeconds), 0o600))

	go func() {
		_ = conv.WatchLeapSecondFile(ctx, path)
	}()

	time.Sleep(100 * time.Millisecond)

	// act
	require.NoError(t, os.WriteFile(path, []byte(oneLeapSecond), 0o600))

	// assert
	assert.Eventually(t, func() bool {
		return conv.LeapSecondTable().Len() == 1
	}, watchTimeout, 20*time.Millisecond)

	// act
	require.NoError(t, os.WriteFile(path, []byte("leap_days = [1990-06-29]"), 0o600))

	// assert
	assert.Eventually(t, func() bool {
		return logHandler.HasErrorLogWithMessage("leap second table reload failed").WithAttrKey("error").Assert()
	}, watchTimeout, 20*time.Millisecond)
	assert.Equal(t, 1, conv.LeapSecondTable().Len(), "a failed reload keeps the previous table")
}
