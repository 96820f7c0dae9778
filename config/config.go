// Package config settings of shamir-audit
//
// settings come from, in order of priority: command line flags bound by
// BindPFlags, the config file loaded by LoadFromFile, and the defaults set by
// SetDefaults.
package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Laisky/errors/v2"
	zap "github.com/Laisky/zap"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	gutils "github.com/Laisky/shamir-audit"
	"github.com/Laisky/shamir-audit/log"
)

// config threadsafe settings backed by viper
type config struct {
	mu sync.RWMutex
	v  *viper.Viper

	watchOnce sync.Once
}

// Shared settings of the program
//
//	config.Shared.GetString(config.KeyInput)
var Shared = New()

// New new settings
func New() *config {
	return &config{
		v: viper.New(),
	}
}

// BindPFlags bind pflags to settings, flags that are set override files
func (s *config) BindPFlags(p *pflag.FlagSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.v.BindPFlags(p)
}

// GetString get setting by key
func (s *config) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.GetString(key)
}

// GetBool get setting by key
func (s *config) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.GetBool(key)
}

// GetInt get setting by key
func (s *config) GetInt(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.GetInt(key)
}

// GetUint64 get setting by key
func (s *config) GetUint64(key string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.GetUint64(key)
}

// SetDefault set default value of key
func (s *config) SetDefault(key string, val any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.SetDefault(key, val)
}

type settingsOpt struct {
	enableInclude bool

	watchCtx      context.Context
	watchCallback func(fsnotify.Event)
}

// SettingsOptFunc opt for LoadFromFile
type SettingsOptFunc func(*settingsOpt) error

// WithSettingsEnableInclude follow the `include` key of config files
func WithSettingsEnableInclude() SettingsOptFunc {
	return func(opt *settingsOpt) error {
		opt.enableInclude = true
		return nil
	}
}

// WithSettingsWatchFileModified reload settings whenever the entry file
// or one of its included files changes, until ctx is done.
//
// callback, if not nil, is called after every reload.
// only the first LoadFromFile with this option starts a watcher.
func WithSettingsWatchFileModified(ctx context.Context, callback func(fsnotify.Event)) SettingsOptFunc {
	return func(opt *settingsOpt) error {
		if ctx == nil {
			return errors.Errorf("ctx should not be nil")
		}

		opt.watchCtx = ctx
		opt.watchCallback = callback
		return nil
	}
}

const settingsIncludeKey = "include"

func configTypeOf(fpath string) string {
	return strings.TrimPrefix(filepath.Ext(fpath), ".")
}

// readConfigFile call read with the content and type of fpath
func readConfigFile(fpath string, read func(configType string, in io.Reader) error) error {
	fp, err := os.Open(fpath)
	if err != nil {
		return errors.Wrapf(err, "open config file `%s`", fpath)
	}
	defer gutils.CloseQuietly(fp)

	if err = read(configTypeOf(fpath), fp); err != nil {
		return errors.Wrapf(err, "read config file `%s`", fpath)
	}

	return nil
}

// includeChain entry file followed by the files it includes, recursively.
// included paths are relative to the directory of the entry file,
// the chain stops at the first file already in it.
func includeChain(entryFile string) ([]string, error) {
	files := []string{entryFile}
	for cur := entryFile; ; {
		v := viper.New()
		if err := readConfigFile(cur, func(configType string, in io.Reader) error {
			v.SetConfigType(configType)
			return v.ReadConfig(in)
		}); err != nil {
			return nil, err
		}

		include := v.GetString(settingsIncludeKey)
		if include == "" {
			return files, nil
		}

		cur = filepath.Join(filepath.Dir(entryFile), include)
		if slices.Contains(files, cur) {
			return files, nil
		}

		files = append(files, cur)
	}
}

// LoadFromFile merge settings from file, the format is decided by the file extension.
//
// with WithSettingsEnableInclude, files named by the `include` key are loaded
// too. settings of the including file override the included ones.
func (s *config) LoadFromFile(entryFile string, opts ...SettingsOptFunc) error {
	opt := new(settingsOpt)
	for _, f := range opts {
		if err := f(opt); err != nil {
			return errors.Wrap(err, "apply options")
		}
	}

	files := []string{entryFile}
	if opt.enableInclude {
		var err error
		if files, err = includeChain(entryFile); err != nil {
			return err
		}
	}

	s.mu.Lock()
	for i := len(files) - 1; i >= 0; i-- {
		if err := readConfigFile(files[i], func(configType string, in io.Reader) error {
			s.v.SetConfigType(configType)
			return s.v.MergeConfig(in)
		}); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.mu.Unlock()

	if opt.watchCtx != nil {
		s.watch(opt, entryFile, files, opts)
	}

	log.Shared.Debug("load config files",
		zap.Strings("files", files),
		zap.Bool("include", opt.enableInclude))
	return nil
}

func (s *config) watch(opt *settingsOpt, entryFile string, files []string, opts []SettingsOptFunc) {
	s.watchOnce.Do(func() {
		if err := gutils.WatchFileChanging(opt.watchCtx, files, func(e fsnotify.Event) {
			if err := s.LoadFromFile(entryFile, opts...); err != nil {
				log.Shared.Error("reload settings", zap.Error(err), zap.String("file", e.Name))
				return
			}

			if opt.watchCallback != nil {
				opt.watchCallback(e)
			}
		}); err != nil {
			log.Shared.Error("watch config files", zap.Error(err), zap.Strings("files", files))
			return
		}

		log.Shared.Debug("watching config files", zap.Strings("files", files))
	})
}
