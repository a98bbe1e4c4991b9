package serialize

// Default serializer settings.
const (
	// DefaultLineEnding is no line ending at all: canonical X12 places
	// no whitespace between a segment terminator and the next segment.
	DefaultLineEnding = ""
)

// serializerConfig holds the configuration options for serializing
// interchange trees.
type serializerConfig struct {
	lineEnding string // bytes written after each segment terminator, default ""
}

func defaultConfig() serializerConfig {
	return serializerConfig{lineEnding: DefaultLineEnding}
}

// SerializerOption is a functional option for configuring a
// Serializer, following this module's inherited functional-options
// convention (github.com/dshills/golevel7/encode.EncoderOption).
type SerializerOption func(*serializerConfig)

// WithLineEnding appends extra bytes (e.g. "\n") after every segment
// terminator. Some trading partners format interchanges with a
// newline after each segment purely for human readability; the
// default (none) produces the canonical unbroken wire form.
func WithLineEnding(ending string) SerializerOption {
	return func(c *serializerConfig) {
		c.lineEnding = ending
	}
}
