package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicecoach/voicecoach/engine"
)

func jsonDecode(r *http.Request, v any) error { return json.NewDecoder(r.Body).Decode(v) }

func tempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF0000WAVE"), 0o644))
	return path
}

func TestASR_DecodesWords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcribe", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		assert.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"text": "hello world",
			"language": "en",
			"duration": 1.2,
			"words": [
				{"word": "hello", "start": 0.0, "end": 0.4, "probability": 0.9},
				{"word": "world", "start": 0.65, "end": 1.0, "probability": 0.95}
			]
		}`))
	}))
	defer srv.Close()

	out, err := NewHTTP().ASR(context.Background(), srv.URL, tempAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "hello world", out.Text)
	require.Len(t, out.Words, 2)
	assert.Equal(t, "world", out.Words[1].Text)
	assert.Equal(t, 0.65, out.Words[1].Start)
	assert.Equal(t, 0.95, out.Words[1].Confidence)
}

func TestASR_ErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTP().ASR(context.Background(), srv.URL, tempAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestProsody_Decodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"pitch_hz": [110, 0, 140],
			"intensity_db": [58, 61],
			"jitter": 0.013,
			"shimmer": 0.05,
			"hnr_db": 15.1,
			"rms": [0.1, 0.2],
			"tempo_bpm": 98,
			"spectral_centroid_hz": 1800,
			"total_duration_s": 4.2
		}`))
	}))
	defer srv.Close()

	out, err := NewHTTP().Prosody(context.Background(), srv.URL, tempAudio(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{110, 0, 140}, out.PitchHz)
	assert.Equal(t, 0.013, out.Jitter)
	assert.Equal(t, 4.2, out.TotalDurationS)
}

func TestCoach_SendsPromptAndTrims(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var req generateReq
		require.NoError(t, jsonDecode(r, &req))
		gotPrompt = req.Prompt
		assert.Equal(t, "mistral:7b", req.Model)
		assert.False(t, req.Stream)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response": "  Slow down at transitions.  "}`))
	}))
	defer srv.Close()

	metrics := engine.MetricSet{engine.MetricWordsPerMinute: 185}
	rubric := engine.RubricScores{engine.DimPacing: 3}
	out, err := NewHTTP().Coach(context.Background(), srv.URL, "mistral:7b", "hello world", metrics, rubric)
	require.NoError(t, err)
	assert.Equal(t, "Slow down at transitions.", out)
	assert.Contains(t, gotPrompt, "words_per_minute")
	assert.Contains(t, gotPrompt, "hello world")
}
