package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithTraceIDHeader forwards the trace id from the request context to the
// upstream under the given header name.
func WithTraceIDHeader(name string) Option {
	return func(rt *LoggingRoundTripper) {
		rt.traceIDHeader = name
	}
}
