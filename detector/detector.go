// Package detector slides a wide-word window over a lazy sequence of
// aligned machine-word blocks and reports the smallest bit position at
// which a comparator accepts the window, or that no position matched.
//
// Four shapes are provided: Single16/Single32 consume one syncword's worth
// of bits per block (block width == syncword width W); Double16/Double32
// consume two syncwords' worth per block (block width == 2W), trading extra
// register pressure for fewer block-boundary crossings on some targets —
// see preset.Sync32Tol0 and friends, and the benchmark table carried in
// preset/cortexm4.go.
//
// None of the detectors here own storage beyond the sliding window itself;
// the block sequence is consumed one element at a time so that syncwindow
// can drive a detector over a two-segment ring without first copying it
// into one contiguous slice.
package detector

import "github.com/kb2gnd/syncframe/comparator"

// Match is the result of running a Detector: Ok reports whether a bit
// position was found, and Position is only meaningful when Ok is true. Go
// has no Option<T>; this is the allocation-free substitute used throughout
// this module, matching how the rest of the examples corpus represents an
// absent result without forcing a pointer or a sentinel value.
type Match struct {
	Position int
	Ok       bool
}

func found(position int) Match { return Match{Position: position, Ok: true} }

var notFound = Match{}

// Single16 detects a 16-bit syncword in a sequence of 16-bit blocks.
type Single16 struct {
	Comparator comparator.Matcher16
}

// Position scans blocks (already converted from network byte order by the
// caller into host uint16 values) and returns the smallest matching bit
// position, or a Match with Ok == false.
func (d Single16) Position(blocks []uint16) Match {
	if len(blocks) == 0 {
		return notFound
	}

	// The window is conceptually 32 bits: the high 16 hold the word under
	// test, the low 16 hold the block about to slide in.
	var window uint32 = uint32(blocks[0]) << 16

	for i := 1; i < len(blocks); i++ {
		window = (window &^ 0xFFFF) | uint32(blocks[i])

		for offset := 0; offset < 16; offset++ {
			high := uint16(window >> 16)
			if d.Comparator.Match(high) {
				return found(16*(i-1) + offset)
			}
			window <<= 1
		}
	}

	return notFound
}

// Single32 detects a 32-bit syncword in a sequence of 32-bit blocks.
type Single32 struct {
	Comparator comparator.Matcher32
}

func (d Single32) Position(blocks []uint32) Match {
	if len(blocks) == 0 {
		return notFound
	}

	var window uint64 = uint64(blocks[0]) << 32

	for i := 1; i < len(blocks); i++ {
		window = (window &^ 0xFFFFFFFF) | uint64(blocks[i])

		for offset := 0; offset < 32; offset++ {
			high := uint32(window >> 32)
			if d.Comparator.Match(high) {
				return found(32*(i-1) + offset)
			}
			window <<= 1
		}
	}

	return notFound
}

// Double16 detects a 16-bit syncword in a sequence of 32-bit blocks (each
// block carries two syncwords' worth of bits).
type Double16 struct {
	Comparator comparator.Matcher16
}

func (d Double16) Position(blocks []uint32) Match {
	if len(blocks) == 0 {
		return notFound
	}

	current := blocks[0]

	index := 0
	for i := 1; i < len(blocks); i++ {
		next := blocks[i]

		// window holds the 32 bits that straddle current/next, the same
		// trick Double32 uses one register size up: its high half is
		// current's low 16 bits, its low half is next's high 16 bits.
		window := (current << 16) | (next >> 16)

		// All offsets of current's first half come before any offset of
		// window, so the smallest matching position is returned.
		for offset := 0; offset < 16; offset++ {
			if d.Comparator.Match(uint16(current >> 16)) {
				return found(32*index + offset)
			}
			current <<= 1
		}
		for offset := 0; offset < 16; offset++ {
			if d.Comparator.Match(uint16(window >> 16)) {
				return found(32*index + 16 + offset)
			}
			window <<= 1
		}

		current = next
		index++
	}

	for offset := 0; offset < 16; offset++ {
		if d.Comparator.Match(uint16(current >> 16)) {
			return found(32*index + offset)
		}
		current <<= 1
	}

	return notFound
}

// Double32 detects a 32-bit syncword in a sequence of 64-bit blocks.
type Double32 struct {
	Comparator comparator.Matcher32
}

func (d Double32) Position(blocks []uint64) Match {
	if len(blocks) == 0 {
		return notFound
	}

	current := blocks[0]

	index := 0
	for i := 1; i < len(blocks); i++ {
		next := blocks[i]

		// window holds the 32 bits that straddle current/next: its high
		// half is current's low 32 bits, its low half is next's high 32
		// bits. Shifting it tests every bit offset of the straddling word.
		// All offsets of current's first half are tested before any offset
		// of window, so the smallest matching position is returned.
		window := (current << 32) | (next >> 32)

		for offset := 0; offset < 32; offset++ {
			if d.Comparator.Match(uint32(current >> 32)) {
				return found(64*index + offset)
			}
			current <<= 1
		}
		for offset := 0; offset < 32; offset++ {
			if d.Comparator.Match(uint32(window >> 32)) {
				return found(64*index + 32 + offset)
			}
			window <<= 1
		}

		current = next
		index++
	}

	for offset := 0; offset < 32; offset++ {
		if d.Comparator.Match(uint32(current >> 32)) {
			return found(64*index + offset)
		}
		current <<= 1
	}

	return notFound
}
