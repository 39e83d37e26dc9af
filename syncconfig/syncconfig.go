// Package syncconfig builds a syncwindow.Scanner from a description learned
// at startup (a config file, a command-line flag) rather than chosen at
// compile time. It is pure data plus a constructor; it owns no detection
// logic of its own, mirroring the teacher's own config.go, which likewise
// does nothing but parse settings into the types the rest of the program
// already knows how to use.
package syncconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kb2gnd/syncframe/comparator"
	"github.com/kb2gnd/syncframe/syncwindow"
)

// Width is the syncword width in bits.
type Width int

const (
	Width16 Width = 16
	Width32 Width = 32
)

// Mode selects how many syncwords' worth of bits each block carries.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeDouble Mode = "double"
)

// ComparatorKind names one of the four comparator families.
type ComparatorKind string

const (
	KindExact          ComparatorKind = "exact"
	KindPopCount       ComparatorKind = "popcount"
	KindLZC            ComparatorKind = "lzc"
	KindTwosComplement ComparatorKind = "twoscmpl"
)

// Spec is the YAML-serializable description of a detector configuration.
// Keys are set by the yaml tags below (lowercase, snake_case for
// capacity_hint), matching the teacher's other YAML-driven config structs.
type Spec struct {
	Width      Width          `yaml:"width"`
	Mode       Mode           `yaml:"mode"`
	Comparator ComparatorKind `yaml:"comparator"`
	Tolerance  uint           `yaml:"tolerance"`
	Syncword   string         `yaml:"syncword"` // hex, with or without a leading "0x"
	// CapacityHint sizes the initial ring allocation in blocks; it is a
	// performance hint only; zero selects a small built-in default.
	CapacityHint int `yaml:"capacity_hint,omitempty"`
}

// ConfigError reports a malformed Spec: a bad width/mode/comparator-kind
// combination, an unparsable syncword, or any other input-shape violation
// caught before a Window would be constructed.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("syncconfig: %s: %s", e.Field, e.Reason)
}

func configErr(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// Build constructs the Scanner a Spec describes. Unlike the core packages'
// panic-on-programmer-error convention, Build returns a regular error: the
// Spec usually originates outside the program (a file, a flag), so a bad
// value is an input problem, not a precondition violation.
func Build(s Spec) (syncwindow.Scanner, error) {
	capacityHint := s.CapacityHint
	if capacityHint <= 0 {
		capacityHint = 8
	}

	switch s.Width {
	case Width16:
		sw, err := parseHex16(s.Syncword)
		if err != nil {
			return nil, err
		}
		cmp, err := comparator16(s.Comparator, sw, s.Tolerance)
		if err != nil {
			return nil, err
		}
		switch s.Mode {
		case ModeSingle:
			return syncwindow.NewSingle16(cmp, capacityHint), nil
		case ModeDouble:
			return syncwindow.NewDouble16(cmp, capacityHint), nil
		default:
			return nil, configErr("mode", fmt.Sprintf("unknown mode %q", s.Mode))
		}

	case Width32:
		sw, err := parseHex32(s.Syncword)
		if err != nil {
			return nil, err
		}
		cmp, err := comparator32(s.Comparator, sw, s.Tolerance)
		if err != nil {
			return nil, err
		}
		switch s.Mode {
		case ModeSingle:
			return syncwindow.NewSingle32(cmp, capacityHint), nil
		case ModeDouble:
			return syncwindow.NewDouble32(cmp, capacityHint), nil
		default:
			return nil, configErr("mode", fmt.Sprintf("unknown mode %q", s.Mode))
		}

	default:
		return nil, configErr("width", fmt.Sprintf("unsupported width %d (want 16 or 32)", s.Width))
	}
}

func comparator16(kind ComparatorKind, sw uint16, tol uint) (comparator.Matcher16, error) {
	switch kind {
	case KindExact:
		return comparator.NewExact16(sw), nil
	case KindPopCount:
		return comparator.NewPopCount16(sw, tol), nil
	case KindLZC:
		return comparator.NewLeadingZeroCount16(sw, tol), nil
	case KindTwosComplement:
		return comparator.NewTwosComplement16(sw, tol), nil
	default:
		return nil, configErr("comparator", fmt.Sprintf("unknown comparator kind %q", kind))
	}
}

func comparator32(kind ComparatorKind, sw uint32, tol uint) (comparator.Matcher32, error) {
	switch kind {
	case KindExact:
		return comparator.NewExact32(sw), nil
	case KindPopCount:
		return comparator.NewPopCount32(sw, tol), nil
	case KindLZC:
		return comparator.NewLeadingZeroCount32(sw, tol), nil
	case KindTwosComplement:
		return comparator.NewTwosComplement32(sw, tol), nil
	default:
		return nil, configErr("comparator", fmt.Sprintf("unknown comparator kind %q", kind))
	}
}

func parseHex16(s string) (uint16, error) {
	v, err := parseHex(s, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func parseHex32(s string) (uint32, error) {
	v, err := parseHex(s, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseHex(s string, bitSize int) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, bitSize)
	if err != nil {
		return 0, configErr("syncword", fmt.Sprintf("invalid %d-bit hex value %q: %v", bitSize, s, err))
	}
	return v, nil
}
