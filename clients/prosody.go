package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/voicecoach/voicecoach/engine"
)

// Prosody sends the audio to the acoustic feature extractor and returns its
// measurements. The response maps directly onto engine.ProsodyFeatures, so a
// partially populated extractor (no pitch tracker, say) still decodes fine.
func (h *HTTP) Prosody(ctx context.Context, url, audioPath string) (*engine.ProsodyFeatures, error) {
	resp, err := h.uploadAudio(ctx, url+"/extract", audioPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse("prosody", resp)
	}

	var out engine.ProsodyFeatures
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("prosody decode: %w", err)
	}
	return &out, nil
}
