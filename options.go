package cea608

import "github.com/rs/zerolog"

// Option configures a CaptionStream.
type Option func(*streamOptions)

// Cea608Option configures a Cea608Stream.
type Cea608Option func(*streamOptions)

type streamOptions struct {
	log zerolog.Logger
}

func newStreamOptions() streamOptions {
	return streamOptions{log: zerolog.Nop()}
}

// WithLogger attaches a zerolog.Logger that receives Debug-level diagnostics
// for every SEI event CaptionStream drops (no T.35 payload or truncated SEI,
// rejected or short user-data envelope, filler or truncated CC packets). The
// default is a no-op logger: nothing is logged unless a caller opts in.
func WithLogger(log zerolog.Logger) Option {
	return func(o *streamOptions) { o.log = log }
}

// WithCea608Logger is the Cea608Stream equivalent of WithLogger. The
// decoder stores the logger but emits no diagnostics of its own.
func WithCea608Logger(log zerolog.Logger) Cea608Option {
	return func(o *streamOptions) { o.log = log }
}
