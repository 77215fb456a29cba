package mutation

// CallOption customizes a single mutation call.
type CallOption func(*callOptions)

type callOptions struct {
	message string
	then    func()
}

// WithMessage replaces the default success message.
func WithMessage(msg string) CallOption {
	return func(o *callOptions) {
		o.message = msg
	}
}

// Then runs fn after a successful mutation, once any invalidation has
// completed.
func Then(fn func()) CallOption {
	return func(o *callOptions) {
		o.then = fn
	}
}

func collectOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
