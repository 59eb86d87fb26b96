package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/voicecoach/voicecoach/engine"
)

const coachSystem = "You are a concise speaking coach. Use the provided metrics and transcript " +
	"to give actionable feedback. Focus on clarity, confidence, tone, pacing, engagement, " +
	"cadence, and flow. Provide 3-5 concrete tips."

const transcriptExcerptLimit = 1200

type generateReq struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResp struct {
	Response string `json:"response"`
}

// Coach asks an Ollama-compatible endpoint for prose feedback on a finished
// analysis. Failures here never block a report; the orchestrator degrades to
// a placeholder note.
func (h *HTTP) Coach(ctx context.Context, url, model, transcript string, metrics engine.MetricSet, rubric engine.RubricScores) (string, error) {
	prompt, err := coachPrompt(transcript, metrics, rubric)
	if err != nil {
		return "", err
	}
	body, _ := json.Marshal(generateReq{Model: model, Prompt: prompt, Stream: false})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(url, "/")+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorFromResponse("coach", resp)
	}

	var out generateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("coach decode: %w", err)
	}
	return strings.TrimSpace(out.Response), nil
}

func coachPrompt(transcript string, metrics engine.MetricSet, rubric engine.RubricScores) (string, error) {
	mjson, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return "", err
	}
	rjson, err := json.MarshalIndent(rubric, "", "  ")
	if err != nil {
		return "", err
	}
	if len(transcript) > transcriptExcerptLimit {
		transcript = transcript[:transcriptExcerptLimit]
	}
	return fmt.Sprintf("[SYSTEM]\n%s\n\n[USER]\nMetrics:\n%s\n\nRubric Scores:\n%s\n\nTranscript (excerpt):\n%s\n\nWrite feedback: bullet points, prioritized, with small examples to try.",
		coachSystem, mjson, rjson, transcript), nil
}
