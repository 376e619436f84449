package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

const LogConfigEnv = "SITE_LOG_CONFIG"

type ObjectWithLevel interface {
	MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level)
}

type withLevel struct {
	level zerolog.Level
	obj   ObjectWithLevel
}

func WithLevel(level zerolog.Level, obj ObjectWithLevel) *withLevel {
	if obj == nil {
		return nil
	}
	return &withLevel{level: level, obj: obj}
}

func (w *withLevel) MarshalZerologObject(e *zerolog.Event) {
	w.obj.MarshalZerologObjectWithLevel(e, w.level)
}

func ObjectIf(e *zerolog.Event, key string, w *withLevel, logNil bool) {
	if w == nil {
		if logNil {
			e.Interface(key, nil)
		}
		return
	}
	e.Object(key, w)
}

// LoadLogging replaces the global logger. With SITE_LOG_CONFIG set the file is
// compiled through zeroconfig, otherwise a console logger on stderr is used.
func LoadLogging(debug bool) error {
	path := os.Getenv(LogConfigEnv)
	if path == "" {
		log.Logger = NewConsole(os.Stderr, debug)
		return nil
	}
	logger, err := FromFile(path)
	if err != nil {
		return err
	}
	log.Logger = *logger
	return nil
}

func FromFile(path string) (*zerolog.Logger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s is not readable: %w", LogConfigEnv, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s is not readable: %w", LogConfigEnv, err)
	}
	return Compile(data)
}

func Compile(data []byte) (*zerolog.Logger, error) {
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s is not valid yaml: %w", LogConfigEnv, err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s is not valid for zerolog, see go.mau.fi/zeroconfig documentation: %w", LogConfigEnv, err)
	}
	return logger, nil
}

func NewConsole(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
