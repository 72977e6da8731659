package boundseq

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/boundseq/codec"
	"github.com/hupe1980/boundseq/persistence"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	compression      persistence.CompressionType
	codec            codec.Codec
	concurrency      int
}

// Option configures construction, persistence and batch search.
//
// Options never affect the content of a sequence. They only control
// how it is logged, measured, encoded and searched.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := boundseq.NewJSONLogger(slog.LevelDebug)
//	s, _ := boundseq.New(21, values, boundseq.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCompression selects the payload compression used by Encode.
// Decoding detects the compression from the frame header.
func WithCompression(c persistence.CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec configures the codec used by EncodeSnapshot and DecodeSnapshot.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithConcurrency bounds the number of goroutines used by SearchAll.
// Values < 1 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		compression:      persistence.CompressionNone,
		codec:            codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
