package render

// Option configures a CardRenderer.
type Option func(*CardRenderer)

// WithSanitizer routes every embedded field value through s. Passing nil
// restores verbatim output.
func WithSanitizer(s Sanitizer) Option {
	return func(r *CardRenderer) {
		r.sanitizer = s
	}
}

// WithFallbackName overrides the heading used for records without a name.
func WithFallbackName(name string) Option {
	return func(r *CardRenderer) {
		if name == "" {
			return
		}
		r.fallbackName = name
	}
}
