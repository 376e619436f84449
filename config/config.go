package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benlindsay/gatsby-site/config/site"
	"github.com/benlindsay/gatsby-site/config/validate"
	"github.com/benlindsay/gatsby-site/logging"
	"github.com/benlindsay/gatsby-site/utils"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "SITE"
)

var (
	ConfigPathEnv = ENV_PREFIX + "_CONFIG"
)

// Load returns the compiled-in site definition, validated. No I/O is performed
// and repeated calls return equal values.
func Load() (site.SiteConfig, error) {
	log.Logger.Debug().Msg("Configuration loading start")
	cfg, err := Validate(site.Default())
	if err != nil {
		return site.SiteConfig{}, err
	}
	logLoaded(cfg, "builtin")
	return cfg, nil
}

// LoadFile reads a YAML document with the SiteConfig field set and validates it.
func LoadFile(path string) (site.SiteConfig, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")
	data, err := os.ReadFile(path)
	if err != nil {
		return site.SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return site.SiteConfig{}, err
	}
	logLoaded(cfg, path)
	return cfg, nil
}

// LoadFromEnv loads the file named by SITE_CONFIG, or the compiled-in
// definition when the variable is unset.
func LoadFromEnv() (site.SiteConfig, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return LoadFile(path)
	}
	return Load()
}

// Parse decodes a YAML document strictly (unknown fields are rejected) and
// validates the result.
func Parse(data []byte) (site.SiteConfig, error) {
	cfg, err := Decode(data)
	if err != nil {
		return site.SiteConfig{}, err
	}
	return Validate(cfg)
}

// Decode decodes a YAML document without validating it.
func Decode(data []byte) (site.SiteConfig, error) {
	var cfg site.SiteConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return site.SiteConfig{}, errors.New("decode config: empty document")
		}
		return site.SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks every invariant of cfg. On success cfg is returned unchanged;
// otherwise the error is a *validate.ValidationErrors of InvalidField entries.
func Validate(cfg site.SiteConfig) (site.SiteConfig, error) {
	var verr validate.ValidationErrors
	cfg.Validate(&verr, "")
	if err := verr.Err(); err != nil {
		return site.SiteConfig{}, err
	}
	return cfg, nil
}

func Marshal(cfg site.SiteConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func MarshalJSON(cfg site.SiteConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Fingerprint identifies the content of cfg; equal configs share a fingerprint.
func Fingerprint(cfg site.SiteConfig) (string, error) {
	return utils.HashDataYAML(cfg)
}

func logLoaded(cfg site.SiteConfig, source string) {
	ev := log.Logger.Info().Str("source", source)
	if sum, err := Fingerprint(cfg); err == nil {
		ev = ev.Str("fingerprint", sum[:12])
	}
	logging.ObjectIf(ev, "site", logging.WithLevel(log.Logger.GetLevel(), &cfg), false)
	ev.Msg("Configuration loaded")
}
