package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
)

func Example_bindPFlags() {
	fs := pflag.NewFlagSet("audit", pflag.ContinueOnError)
	fs.String(KeyInput, DefaultInput, "share file")

	// bind pflags to settings
	if err := Shared.BindPFlags(fs); err != nil {
		panic(err)
	}

	Shared.GetString(KeyInput)
}

func writeFile(t *testing.T, fpath, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(fpath, []byte(content), 0o600))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "settings.yml")
	writeFile(t, fpath, `---
input: shares.json
threshold: 3
max_subsets: 1000
watch: true
`)

	c := New()
	require.NoError(t, c.LoadFromFile(fpath))
	require.Equal(t, "shares.json", c.GetString(KeyInput))
	require.Equal(t, 3, c.GetInt(KeyThreshold))
	require.Equal(t, uint64(1000), c.GetUint64(KeyMaxSubsets))
	require.True(t, c.GetBool(KeyWatch))

	require.Error(t, c.LoadFromFile(filepath.Join(dir, "missing.yml")))
}

func TestLoadFromFileInclude(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "settings.yml")
	writeFile(t, entry, `---
include: base.json
threshold: 3
`)
	writeFile(t, filepath.Join(dir, "base.json"), `{
		"include": "settings.yml",
		"threshold": 2,
		"format": "json"
	}`)

	c := New()
	require.NoError(t, c.LoadFromFile(entry, WithSettingsEnableInclude()))
	require.Equal(t, 3, c.GetInt(KeyThreshold))
	require.Equal(t, FormatJSON, c.GetString(KeyFormat))

	// without include
	c = New()
	require.NoError(t, c.LoadFromFile(entry))
	require.Equal(t, 3, c.GetInt(KeyThreshold))
	require.Empty(t, c.GetString(KeyFormat))
}

func TestIncludeChain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := filepath.Join(dir, "a.yml")
	writeFile(t, entry, "include: b.toml\n")
	writeFile(t, filepath.Join(dir, "b.toml"), `include = "c.json"`)
	writeFile(t, filepath.Join(dir, "c.json"), `{"include": "a.yml"}`)

	files, err := includeChain(entry)
	require.NoError(t, err)
	require.Equal(t, []string{
		entry,
		filepath.Join(dir, "b.toml"),
		filepath.Join(dir, "c.json"),
	}, files)

	writeFile(t, filepath.Join(dir, "c.json"), `{"include": "missing.yml"}`)
	_, err = includeChain(entry)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFileWatch(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "settings.yml")
	writeFile(t, fpath, "threshold: 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan fsnotify.Event, 1)
	c := New()
	require.NoError(t, c.LoadFromFile(fpath, WithSettingsWatchFileModified(ctx, func(e fsnotify.Event) {
		select {
		case changed <- e:
		default:
		}
	})))
	require.Equal(t, 2, c.GetInt(KeyThreshold))

	writeFile(t, fpath, "threshold: 5\n")
	select {
	case e := <-changed:
		require.Equal(t, fpath, e.Name)
	case <-time.After(10 * time.Second):
		t.Fatal("settings not reloaded")
	}
	require.Equal(t, 5, c.GetInt(KeyThreshold))

	//nolint:staticcheck // nil ctx is rejected
	require.Error(t, c.LoadFromFile(fpath, WithSettingsWatchFileModified(nil, nil)))
}

func TestAudit(t *testing.T) {
	c := New()
	c.SetDefaults()

	a, err := c.Audit()
	require.NoError(t, err)
	require.Equal(t, &Audit{
		Input:    DefaultInput,
		Workers:  runtime.NumCPU(),
		TieBreak: shamir.TieBreakSmallest,
		Format:   FormatText,
		Color:    ColorAuto,
	}, a)
	require.Len(t, a.Options(), 3)

	fs := pflag.NewFlagSet("audit", pflag.ContinueOnError)
	fs.Int(KeyThreshold, 0, "")
	fs.String(KeyTieBreak, "smallest", "")
	require.NoError(t, c.BindPFlags(fs))
	require.NoError(t, fs.Parse([]string{"--threshold", "3", "--tie_break", "strict"}))

	a, err = c.Audit()
	require.NoError(t, err)
	require.Equal(t, 3, a.Threshold)
	require.Equal(t, shamir.TieBreakStrict, a.TieBreak)

	for key, val := range map[string]any{
		KeyTieBreak:  "largest",
		KeyInput:     "",
		KeyThreshold: -1,
		KeyWorkers:   0,
		KeyFormat:    "xml",
		KeyColor:     "sometimes",
	} {
		c := New()
		c.SetDefaults()
		c.SetDefault(key, val)
		_, err := c.Audit()
		require.Error(t, err, key)
	}
}
