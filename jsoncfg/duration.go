package jsoncfg

import (
	"fmt"
	"time"
)

// Duration wraps [time.Duration] so config files can spell timeouts in
// the form accepted by [time.ParseDuration], such as "30s" or "2m", and
// have them marshal back the same way.
type Duration time.Duration

// Value returns the wrapped [time.Duration].
func (d Duration) Value() time.Duration {
	return time.Duration(d)
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Value().String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}
