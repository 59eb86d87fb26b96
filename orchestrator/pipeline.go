// Package orchestrator wires the external collaborators and the analysis
// engine into one forward pipeline: transcribe, extract prosody, analyze,
// coach, persist.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/voicecoach/voicecoach/clients"
	cfg "github.com/voicecoach/voicecoach/config"
	"github.com/voicecoach/voicecoach/engine"
)

const feedbackUnavailable = "(LLM feedback unavailable. Ensure the coach service is running, " +
	"or set services.coach.skip to analyze without it.)"

type Pipeline struct {
	cfg    *cfg.Root
	http   *clients.HTTP
	engine *engine.Engine
	log    *logrus.Logger
}

func NewPipeline(c *cfg.Root, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
	}
	return &Pipeline{
		cfg:    c,
		http:   clients.NewHTTP(),
		engine: engine.New(c.EngineOptions()),
		log:    log,
	}
}

// Run analyzes one audio file end to end and persists the session report.
// ASR failure is fatal; a missing prosody service degrades the metrics and a
// failing coach degrades the feedback, neither fails the run.
func (p *Pipeline) Run(ctx context.Context, audioPath string) (*Session, error) {
	asr, err := p.http.ASR(ctx, p.cfg.Services.ASR.URL, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", audioPath, err)
	}
	p.log.WithFields(logrus.Fields{
		"audio":    audioPath,
		"words":    len(asr.Words),
		"language": asr.Language,
	}).Info("transcription complete")

	prosody := engine.ProsodyFeatures{TotalDurationS: asr.Duration}
	if p.cfg.Services.Prosody.URL != "" {
		if feats, err := p.http.Prosody(ctx, p.cfg.Services.Prosody.URL, audioPath); err != nil {
			p.log.WithError(err).Warn("prosody extraction failed, continuing with timing-only metrics")
		} else {
			prosody = *feats
			if prosody.TotalDurationS <= 0 {
				prosody.TotalDurationS = asr.Duration
			}
		}
	}

	report, err := p.engine.Analyze(asr.Words, prosody)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", audioPath, err)
	}
	p.log.WithFields(logrus.Fields{
		"pauses": len(report.Pauses),
		"wpm":    report.Metrics[engine.MetricWordsPerMinute],
	}).Info("analysis complete")

	session := &Session{
		Audio:      audioPath,
		Transcript: asr.Text,
		Language:   asr.Language,
		Report:     report,
		Feedback:   feedbackUnavailable,
	}
	if p.cfg.Services.Coach.Skip {
		session.Feedback = "(LLM feedback skipped.)"
	} else {
		feedback, err := p.http.Coach(ctx, p.cfg.Services.Coach.URL, p.cfg.Services.Coach.Model,
			asr.Text, report.Metrics, report.Rubric)
		if err != nil {
			p.log.WithError(err).Warn("coach unavailable")
			session.CoachError = err.Error()
		} else {
			session.Feedback = feedback
		}
	}

	path, err := persist(p.cfg.Paths.Outputs, session)
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	p.log.WithFields(logrus.Fields{"session": session.ID, "path": path}).Info("session saved")
	return session, nil
}
