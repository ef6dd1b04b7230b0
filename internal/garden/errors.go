package garden

import "fmt"

// ConfigError reports a degenerate builder parameter. Builders fail fast on
// these instead of emitting NaN or zero-area geometry; parameters are meant
// to be validated once at configuration time, so hitting one of these at
// build time is a boot-fatal condition.
type ConfigError struct {
	Builder string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Builder, e.Reason)
}

func configErrorf(builder, format string, args ...any) error {
	return &ConfigError{Builder: builder, Reason: fmt.Sprintf(format, args...)}
}
