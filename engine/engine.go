package engine

// Options configures an Engine. The zero value is not usable directly; use
// DefaultOptions and override fields as needed. Omitting any field keeps its
// default, so partial configuration is always safe.
type Options struct {
	Thresholds PauseThresholds
	TargetWPM  WPMBand
	Syllables  SyllableEstimator
}

// DefaultOptions returns the presentation-speech defaults with the built-in
// syllable estimator.
func DefaultOptions() Options {
	return Options{
		Thresholds: DefaultThresholds(),
		TargetWPM:  DefaultWPMBand(),
		Syllables:  EstimateSyllables,
	}
}

// Engine runs the forward analysis pipeline: normalize word timing, segment
// pauses, aggregate metrics, score the rubric, assemble the report. It is
// stateless and safe for concurrent use from any number of goroutines.
type Engine struct {
	opts Options
}

// New returns an Engine, filling unset option fields with defaults.
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Thresholds == (PauseThresholds{}) {
		opts.Thresholds = def.Thresholds
	}
	if opts.TargetWPM == (WPMBand{}) {
		opts.TargetWPM = def.TargetWPM
	}
	if opts.Syllables == nil {
		opts.Syllables = def.Syllables
	}
	return &Engine{opts: opts}
}

// Analyze converts raw word timing and prosodic features into a complete
// Report. It is deterministic: identical inputs produce identical analytic
// output (the generated_at timestamp aside). The only error condition is
// word timing that is empty or entirely degenerate.
func (e *Engine) Analyze(words []RawWord, prosody ProsodyFeatures) (Report, error) {
	spans, err := Normalize(words)
	if err != nil {
		return Report{}, err
	}
	pauses := Segment(spans, prosody.TotalDurationS, e.opts.Thresholds)
	metrics := Aggregate(spans, pauses, prosody, e.opts.TargetWPM, e.opts.Syllables)
	rubric := Score(metrics)
	return Assemble(spans, pauses, metrics, rubric)
}
