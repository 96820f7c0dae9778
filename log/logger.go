// Package log console logger of shamir-audit
//
// every package logs through Shared or a child of it. children share the
// level of their parent, so `--debug` changes the level of the whole program.
//
// logs go to stderr, stdout is kept for the audit report.
package log

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/Laisky/errors/v2"
	zap "github.com/Laisky/zap"
	"github.com/Laisky/zap/zapcore"
)

// SampleRateDenominator sample rate = sample / SampleRateDenominator
const SampleRateDenominator = 1000

const defaultName = "shamir-audit"

// Shared logger of the program
var Shared Logger

// Level logger level
type Level string

const (
	// LevelDebug logs every discarded subset and worker
	LevelDebug Level = "debug"
	// LevelInfo default level
	LevelInfo Level = "info"
	// LevelWarn ties, declared n mismatch and failed watch runs
	LevelWarn Level = "warn"
	// LevelError only errors
	LevelError Level = "error"
)

func (l Level) String() string {
	return string(l)
}

func (l Level) zap() (zapcore.Level, error) {
	switch l {
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelInfo:
		return zap.InfoLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	default:
		return 0, errors.Errorf("invalid level: %s", l)
	}
}

// Logger leveled logger with sampling
type Logger interface {
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	Sync() error

	// Level current level, shared with parent and children
	Level() Level
	// ChangeLevel change level of this logger, its parent and its children
	ChangeLevel(level Level) error
	// DebugSample emit debug log with probability sample/SampleRateDenominator
	DebugSample(sample int, msg string, fields ...zapcore.Field)
	Named(name string) Logger
	With(fields ...zapcore.Field) Logger
}

type logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

type option struct {
	name  string
	level Level
	out   io.Writer
}

// Option optional arguments for New
type Option func(*option) error

// WithName set logger name, default to "shamir-audit"
func WithName(name string) Option {
	return func(o *option) error {
		o.name = name
		return nil
	}
}

// WithLevel set initial level, default to info
func WithLevel(level Level) Option {
	return func(o *option) error {
		if _, err := level.zap(); err != nil {
			return err
		}

		o.level = level
		return nil
	}
}

// WithWriter write logs to w instead of stderr
func WithWriter(w io.Writer) Option {
	return func(o *option) error {
		if w == nil {
			return errors.New("writer should not be nil")
		}

		o.out = w
		return nil
	}
}

// New create console logger
func New(optfs ...Option) (Logger, error) {
	opt := &option{
		name:  defaultName,
		level: LevelInfo,
		out:   os.Stderr,
	}
	for _, optf := range optfs {
		if err := optf(opt); err != nil {
			return nil, err
		}
	}

	lvl, _ := opt.level.zap()
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	sink := zapcore.Lock(zapcore.AddSync(opt.out))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, atomicLevel)

	return &logger{
		Logger: zap.New(core, zap.AddCaller(), zap.ErrorOutput(sink)).Named(opt.name),
		level:  atomicLevel,
	}, nil
}

func (l *logger) Level() Level {
	switch l.level.Level() {
	case zap.DebugLevel:
		return LevelDebug
	case zap.WarnLevel:
		return LevelWarn
	case zap.ErrorLevel:
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *logger) ChangeLevel(level Level) error {
	lvl, err := level.zap()
	if err != nil {
		return err
	}

	l.level.SetLevel(lvl)
	l.Debug("set logger level", zap.String("level", level.String()))
	return nil
}

// DebugSample sample could be [0, 1000], less than 0 means never,
// greater than 1000 means always
func (l *logger) DebugSample(sample int, msg string, fields ...zapcore.Field) {
	if !l.level.Enabled(zap.DebugLevel) || rand.Intn(SampleRateDenominator) >= sample {
		return
	}

	l.Debug(msg, fields...)
}

func (l *logger) Named(name string) Logger {
	return &logger{
		Logger: l.Logger.Named(name),
		level:  l.level,
	}
}

func (l *logger) With(fields ...zapcore.Field) Logger {
	return &logger{
		Logger: l.Logger.With(fields...),
		level:  l.level,
	}
}

func init() {
	var err error
	if Shared, err = New(); err != nil {
		panic(fmt.Sprintf("create logger: %+v", err))
	}
}
