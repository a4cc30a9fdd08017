package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/save-archiver/internal/lock"
	"github.com/raoulx24/save-archiver/internal/session"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// game creates a home with a live save folder and returns the common flags.
func game(t *testing.T) (home string, flags []string) {
	t.Helper()
	home = t.TempDir()
	live := filepath.Join(home, "Zomboid", "Saves", "Sandbox", "world")
	require.NoError(t, os.MkdirAll(live, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(live, "map_t.bin"), []byte("v1"), 0o644))

	cfg := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: error\n  format: text\n"), 0o644))

	return home, []string{"--config", cfg, "--home", home}
}

func TestCLI_BackupListRestore(t *testing.T) {
	home, flags := game(t)
	saveFile := filepath.Join(home, "Zomboid", "Saves", "Sandbox", "world", "map_t.bin")

	out, err := run(t, append([]string{"backup"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "saved session")
	assert.Contains(t, out, "1 files")

	sessions, err := session.List(filepath.Join(home, "Zomboid", "BSaves"))
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	out, err = run(t, append([]string{"list"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, sessions[0].Name())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "title, header and one session")
	assert.True(t, strings.HasPrefix(lines[2], "0  -1 "), lines[2])

	require.NoError(t, os.WriteFile(saveFile, []byte("v2 after dying"), 0o644))

	out, err = run(t, append([]string{"restore", "-n", "-1"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "restored session "+sessions[0].Name())

	got, err := os.ReadFile(saveFile)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	kept, err := os.ReadFile(filepath.Join(home, "Zomboid", "Saves_tmp", "Sandbox", "world", "map_t.bin"))
	require.NoError(t, err)
	assert.Equal(t, "v2 after dying", string(kept))
}

func TestCLI_ListEmpty(t *testing.T) {
	_, flags := game(t)

	out, err := run(t, append([]string{"list"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "no sessions")
}

func TestCLI_RestoreOutOfRange(t *testing.T) {
	_, flags := game(t)

	_, err := run(t, append([]string{"backup"}, flags...)...)
	require.NoError(t, err)

	_, err = run(t, append([]string{"restore", "-n=5"}, flags...)...)
	require.ErrorIs(t, err, session.ErrOutOfRange)
}

func TestCLI_BackupWhileLocked(t *testing.T) {
	home, flags := game(t)

	l, err := lock.Acquire(filepath.Join(home, "Zomboid", ".save-archiver.lock"))
	require.NoError(t, err)
	defer l.Release()

	_, err = run(t, append([]string{"backup"}, flags...)...)
	require.ErrorIs(t, err, lock.ErrLocked)
}

func TestCLI_FlagOverrides(t *testing.T) {
	home, flags := game(t)
	other := filepath.Join(home, "Other", "Saves")
	require.NoError(t, os.MkdirAll(other, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(other, "a.txt"), []byte("a"), 0o644))

	_, err := run(t, append([]string{"backup", "--game", "Other"}, flags...)...)
	require.NoError(t, err)

	sessions, err := session.List(filepath.Join(home, "Other", "BSaves"))
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestCLI_InvalidLogLevel(t *testing.T) {
	_, flags := game(t)

	_, err := run(t, append([]string{"list", "--log-level", "chatty"}, flags...)...)
	require.Error(t, err)
}

func TestCLI_BadSchedule(t *testing.T) {
	home, _ := game(t)
	cfg := filepath.Join(home, "daemon.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("daemon:\n  schedule: \"every so often\"\n"), 0o644))

	done := make(chan error, 1)
	go func() {
		_, err := run(t, "daemon", "--config", cfg, "--home", home, "--log-level", "error")
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "every so often")
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not reject the schedule")
	}
}
