package docstruct

// Options holds Processor configuration.
type Options struct {
	// MergeThreshold is the word-set similarity at or above which two
	// region texts are considered duplicates and merged. Range [0, 1].
	MergeThreshold float64

	// DisablePostprocessing skips the cleaning and correction passes;
	// detection and statistics then run over the raw text.
	DisablePostprocessing bool
}

// DefaultOptions returns the standard processor options.
func DefaultOptions() Options {
	return Options{
		MergeThreshold: 0.8,
	}
}
