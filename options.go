package snapmark

// Option configures a Mode during creation.
//
// Example:
//
//	mode, err := snapmark.NewMode(source,
//	    snapmark.WithToolbar(tb),
//	    snapmark.WithAction("save", saveAction),
//	)
type Option func(*modeOptions)

// modeOptions holds optional configuration for Mode creation.
type modeOptions struct {
	toolbar      Toolbar
	actions      map[string]ActionFunc
	minSelection float64
}

// defaultModeOptions returns the default mode options.
func defaultModeOptions() modeOptions {
	return modeOptions{
		actions:      make(map[string]ActionFunc),
		minSelection: 5, // logical px, below this a release resets to Idle
	}
}

// WithToolbar injects the toolbar collaborator bound to finalized
// selections. Without a toolbar the session still finalizes selections but
// every click falls outside and resets to Idle.
func WithToolbar(t Toolbar) Option {
	return func(o *modeOptions) {
		o.toolbar = t
	}
}

// WithAction registers an action under the given toolbar id.
func WithAction(id string, fn ActionFunc) Option {
	return func(o *modeOptions) {
		o.actions[id] = fn
	}
}

// WithActions registers a whole action registry at once.
func WithActions(actions map[string]ActionFunc) Option {
	return func(o *modeOptions) {
		for id, fn := range actions {
			o.actions[id] = fn
		}
	}
}

// WithMinSelection overrides the minimum selection extent in logical pixels.
func WithMinSelection(px float64) Option {
	return func(o *modeOptions) {
		o.minSelection = px
	}
}
