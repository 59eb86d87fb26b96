package orchestrator

import "github.com/voicecoach/voicecoach/engine"

// Session is one complete analysis run: the engine report plus everything
// the presentation layer wants alongside it.
type Session struct {
	ID         string        `json:"session_id"`
	Audio      string        `json:"audio"`
	Transcript string        `json:"transcript"`
	Language   string        `json:"language,omitempty"`
	Report     engine.Report `json:"report"`
	Feedback   string        `json:"feedback"`
	CoachError string        `json:"coach_error,omitempty"`
}
