package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/voicecoach/voicecoach/engine"
)

// ASRResp is the word-level transcription result from the ASR service.
// Words carry per-word start/end timestamps and recognition confidence.
type ASRResp struct {
	Text     string           `json:"text"`
	Language string           `json:"language"`
	Duration float64          `json:"duration"`
	Words    []engine.RawWord `json:"words"`
}

func (h *HTTP) ASR(ctx context.Context, url, audioPath string) (*ASRResp, error) {
	resp, err := h.uploadAudio(ctx, url+"/transcribe", audioPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse("asr", resp)
	}

	var out ASRResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("asr decode: %w", err)
	}
	return &out, nil
}
