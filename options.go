package ywin

// BufferOption configures a buffer during creation.
//
// Example:
//
//	reg := ywin.NewRegistry()
//	buf := ywin.NewRGBABuffer(ywin.WithRegistry(reg), ywin.WithSize(320, 200))
type BufferOption func(*bufferOptions)

type bufferOptions struct {
	registry      *Registry
	width, height int
}

func defaultBufferOptions() bufferOptions {
	return bufferOptions{registry: DefaultRegistry}
}

// WithRegistry draws the buffer ID from reg instead of DefaultRegistry.
func WithRegistry(reg *Registry) BufferOption {
	return func(o *bufferOptions) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithSize sets the initial logical size.
func WithSize(w, h int) BufferOption {
	return func(o *bufferOptions) {
		o.width = w
		o.height = h
	}
}

func applyBufferOptions(opts []BufferOption) bufferOptions {
	o := defaultBufferOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
