package options

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"regex-transpiler/internal/common"
)

// ErrInvalidOptions indicates a run configuration that cannot be honoured.
var ErrInvalidOptions = errors.New("invalid options")

// UnicodeMode controls the target engine's extended unicode (u) flag.
type UnicodeMode int

const (
	// UnicodeAuto starts with the flag off and lets converters turn it on when needed.
	UnicodeAuto UnicodeMode = iota
	// UnicodeOn starts with the flag on.
	UnicodeOn
	// UnicodeOff never turns the flag on; astral codepoints fall back to surrogate pairs.
	UnicodeOff
)

// String returns a human-readable mode name.
func (m UnicodeMode) String() string {
	switch m {
	case UnicodeAuto:
		return "auto"
	case UnicodeOn:
		return "on"
	case UnicodeOff:
		return "off"
	default:
		return common.UnknownStr
	}
}

// ParseUnicodeMode is the inverse of UnicodeMode.String. An empty string means auto.
func ParseUnicodeMode(s string) (UnicodeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return UnicodeAuto, nil
	case "on", "true", "yes":
		return UnicodeOn, nil
	case "off", "false", "no":
		return UnicodeOff, nil
	default:
		return 0, fmt.Errorf("%w: unknown unicode mode %q", ErrInvalidOptions, s)
	}
}

// Options configures a single conversion run.
type Options struct {
	// Target is the feature level of the engine the pattern is written for.
	Target TargetEnum
	// Unicode controls the extended unicode flag.
	Unicode UnicodeMode
	// CaseInsensitive marks the whole pattern as case-insensitive (the i flag).
	CaseInsensitive bool
	// Logger receives debug traces. Nil means discard.
	Logger *slog.Logger
}

// Default returns options targeting the newest feature level.
func Default() Options {
	return Options{Target: TargetES2018}
}

// Validate checks the options and fills in a discard logger.
func (o *Options) Validate() error {
	if o.Target == 0 {
		o.Target = TargetES2018
	}

	if !o.Target.IsValid() {
		return fmt.Errorf("%w: target %s", ErrInvalidOptions, o.Target)
	}

	if o.Unicode == UnicodeOn && !o.Target.SupportsExtendedUnicode() {
		return fmt.Errorf("%w: target %s has no unicode flag", ErrInvalidOptions, o.Target)
	}

	if o.Unicode < UnicodeAuto || o.Unicode > UnicodeOff {
		return fmt.Errorf("%w: unicode mode %d", ErrInvalidOptions, int(o.Unicode))
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return nil
}
