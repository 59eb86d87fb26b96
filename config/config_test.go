package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "voicecoach", cfg.Pipeline.Name)
	assert.Equal(t, 0.12, cfg.Engine.PauseThresholds.ShortMin)
	assert.Equal(t, 140.0, cfg.Engine.TargetWPMBand.Low)
	assert.Equal(t, "mistral:7b", cfg.Services.Coach.Model)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voicecoach.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pipeline:
  log_level: debug
engine:
  pause_thresholds:
    short_min: 0.10
  target_wpm_band:
    low: 120
    high: 160
services:
  coach:
    skip: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Pipeline.LogLvl)
	assert.Equal(t, 0.10, cfg.Engine.PauseThresholds.ShortMin)
	// untouched keys keep defaults
	assert.Equal(t, 0.25, cfg.Engine.PauseThresholds.GoodMin)
	assert.Equal(t, 120.0, cfg.Engine.TargetWPMBand.Low)
	assert.True(t, cfg.Services.Coach.Skip)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VOICECOACH_SERVICES_ASR_URL", "http://asr.internal:9000")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://asr.internal:9000", cfg.Services.ASR.URL)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voicecoach.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteTemplate_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voicecoach.yaml")
	require.NoError(t, WriteTemplate(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Engine.PauseThresholds, cfg.Engine.PauseThresholds)

	assert.Error(t, WriteTemplate(path), "must not overwrite an existing file")
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Engine.TargetWPMBand.Low = 130
	opts := cfg.EngineOptions()
	assert.Equal(t, 130.0, opts.TargetWPM.Low)
	assert.NotNil(t, opts.Syllables)
}
