// Package config loads the pipeline configuration. Every option has a
// default, so running without a config file is always safe; a YAML file and
// VOICECOACH_* environment variables override selectively.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/voicecoach/voicecoach/engine"
)

type Service struct {
	URL string `mapstructure:"url" yaml:"url"`
}

type Coach struct {
	URL   string `mapstructure:"url" yaml:"url"`
	Model string `mapstructure:"model" yaml:"model"`
	Skip  bool   `mapstructure:"skip" yaml:"skip"`
}

type Services struct {
	ASR     Service `mapstructure:"asr" yaml:"asr"`
	Prosody Service `mapstructure:"prosody" yaml:"prosody"`
	Coach   Coach   `mapstructure:"coach" yaml:"coach"`
}

type Engine struct {
	PauseThresholds engine.PauseThresholds `mapstructure:"pause_thresholds" yaml:"pause_thresholds"`
	TargetWPMBand   engine.WPMBand         `mapstructure:"target_wpm_band" yaml:"target_wpm_band"`
}

type Root struct {
	Pipeline struct {
		Name   string `mapstructure:"name" yaml:"name"`
		LogLvl string `mapstructure:"log_level" yaml:"log_level"`
	} `mapstructure:"pipeline" yaml:"pipeline"`
	Services Services `mapstructure:"services" yaml:"services"`
	Engine   Engine   `mapstructure:"engine" yaml:"engine"`
	Paths    struct {
		Outputs string `mapstructure:"outputs" yaml:"outputs"`
	} `mapstructure:"paths" yaml:"paths"`
}

// Default returns the full configuration with every option at its default.
func Default() *Root {
	var c Root
	c.Pipeline.Name = "voicecoach"
	c.Pipeline.LogLvl = "info"
	c.Services.ASR.URL = "http://localhost:8001"
	c.Services.Prosody.URL = "http://localhost:8002"
	c.Services.Coach.URL = "http://localhost:11434"
	c.Services.Coach.Model = "mistral:7b"
	c.Engine.PauseThresholds = engine.DefaultThresholds()
	c.Engine.TargetWPMBand = engine.DefaultWPMBand()
	c.Paths.Outputs = "outputs"
	return &c
}

// Load reads configuration from path (or ./voicecoach.yaml when empty) and
// the VOICECOACH_* environment. A missing file falls back to defaults; a
// malformed one is an error.
func Load(path string) (*Root, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("voicecoach")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/voicecoach")
		}
	}
	v.SetEnvPrefix("VOICECOACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("pipeline.name", def.Pipeline.Name)
	v.SetDefault("pipeline.log_level", def.Pipeline.LogLvl)
	v.SetDefault("services.asr.url", def.Services.ASR.URL)
	v.SetDefault("services.prosody.url", def.Services.Prosody.URL)
	v.SetDefault("services.coach.url", def.Services.Coach.URL)
	v.SetDefault("services.coach.model", def.Services.Coach.Model)
	v.SetDefault("services.coach.skip", def.Services.Coach.Skip)
	v.SetDefault("engine.pause_thresholds.short_min", def.Engine.PauseThresholds.ShortMin)
	v.SetDefault("engine.pause_thresholds.good_min", def.Engine.PauseThresholds.GoodMin)
	v.SetDefault("engine.pause_thresholds.medium_min", def.Engine.PauseThresholds.MediumMin)
	v.SetDefault("engine.pause_thresholds.long_min", def.Engine.PauseThresholds.LongMin)
	v.SetDefault("engine.target_wpm_band.low", def.Engine.TargetWPMBand.Low)
	v.SetDefault("engine.target_wpm_band.high", def.Engine.TargetWPMBand.High)
	v.SetDefault("paths.outputs", def.Paths.Outputs)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// EngineOptions converts the engine section into engine.Options.
func (c *Root) EngineOptions() engine.Options {
	return engine.Options{
		Thresholds: c.Engine.PauseThresholds,
		TargetWPM:  c.Engine.TargetWPMBand,
		Syllables:  engine.EstimateSyllables,
	}
}

// WriteTemplate writes the default configuration as a YAML file, refusing to
// overwrite an existing one.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config template: %s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
