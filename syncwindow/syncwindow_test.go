package syncwindow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kb2gnd/syncframe/comparator"
	"github.com/kb2gnd/syncframe/syncwindow"
)

func exact32(sw uint32) comparator.Matcher32 { return comparator.NewExact32(sw) }

func TestDetect0ShiftsPos1(t *testing.T) {
	w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)
	w.Extend([]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00})

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(0), matches[0].Shift)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00}, matches[0].Tail)

	assert.Empty(t, w.Detect())
}

func TestDetect1Shift(t *testing.T) {
	w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)
	w.Extend([]byte{0x00, 0x7f, 0xff, 0xff, 0xff, 0x80, 0x00, 0x00})

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(1), matches[0].Shift)
	assert.Equal(t, []byte{0x7f, 0xff, 0xff, 0xff, 0x80, 0x00, 0x00}, matches[0].Tail)
}

func TestDetect7Shift(t *testing.T) {
	w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)
	w.Extend([]byte{0x00, 0x01, 0xff, 0xff, 0xff, 0xfe, 0x00, 0x00})

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(7), matches[0].Shift)
	assert.Equal(t, []byte{0x01, 0xff, 0xff, 0xff, 0xfe, 0x00, 0x00}, matches[0].Tail)
}

func TestDetectMatchInWrap4Shifts(t *testing.T) {
	w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)

	for i := 0; i < 7; i++ {
		w.Extend([]byte{0x00, 0x00, 0x00, 0x00})
	}
	_ = w.Detect() // trims down to the one guard block, as in the source's test setup

	w.Extend([]byte{0x00, 0x00, 0x0f, 0xff}) // last position before wrap
	w.Extend([]byte{0xff, 0xff, 0xf0, 0x00}) // first position after wrap

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(4), matches[0].Shift)
	assert.Equal(t, []byte{0x0f, 0xff, 0xff, 0xff, 0xf0, 0x00}, matches[0].Tail)
}

func TestEndToEnd16BitExact(t *testing.T) {
	w := syncwindow.NewSingle16(comparator.NewExact16(0xFFFF), 4)
	w.Extend([]byte{0x00, 0x00, 0xFF, 0xFF})
	// The syncword sits at the terminal position of the two blocks, which
	// the detector leaves for the guard block; it is found once the next
	// block arrives.
	assert.Empty(t, w.Detect())
	w.Extend([]byte{0x00, 0x00})

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(0), matches[0].Shift)
}

func TestEndToEndDouble16(t *testing.T) {
	w := syncwindow.NewDouble16(comparator.NewExact16(0xFFFF), 4)
	// Two 32-bit blocks; the syncword sits in the second half of the first
	// block, straddling nothing.
	w.Extend([]byte{0x00, 0x00, 0xFF, 0xFF})
	w.Extend([]byte{0x00, 0x00, 0x00, 0x00})

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(0), matches[0].Shift)
}

func TestEndToEndDouble32(t *testing.T) {
	w := syncwindow.NewDouble32(exact32(0xFFFFFFFF), 4)
	// Two 64-bit blocks; the syncword straddles the boundary between them.
	w.Extend([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff})
	w.Extend([]byte{0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})

	matches := w.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(0), matches[0].Shift)
}

func TestIdempotence(t *testing.T) {
	w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)
	w.Extend([]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00})

	require.Len(t, w.Detect(), 1)
	assert.Empty(t, w.Detect(), "a second call with no intervening extend reports nothing new")
}

func TestNoDoubleDetectionAcrossExtendCalls(t *testing.T) {
	w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)
	w.Extend([]byte{0x00, 0xff, 0xff, 0xff})
	assert.Empty(t, w.Detect())

	w.Extend([]byte{0xff, 0x00, 0x00, 0x00})
	matches := w.Detect()
	require.Len(t, matches, 1)

	assert.Empty(t, w.Detect())
}

// Property: inserting a single 32-bit syncword at any bit offset of an
// otherwise-zero stream is reported exactly once, at the expected shift,
// regardless of how the bytes are chopped up across Extend calls.
func TestRapidDetectSweep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		extendBefore := rapid.IntRange(0, 4).Draw(t, "extend_before")
		drainEnd := rapid.IntRange(0, 4).Draw(t, "drain_end")
		extendAfter := rapid.IntRange(0, 4).Draw(t, "extend_after")
		position := rapid.IntRange(0, 32).Draw(t, "position")

		w := syncwindow.NewSingle32(exact32(0xFFFFFFFF), 8)

		for i := 0; i < extendBefore; i++ {
			w.Extend([]byte{0, 0, 0, 0})
		}
		if drainEnd > 0 {
			_ = w.Detect()
		}

		for i := 0; i < extendAfter; i++ {
			w.Extend([]byte{0, 0, 0, 0})
		}

		data := make([]byte, 12)
		setBitsMSBFirst(data, position, 32)
		w.Extend(data)

		matches := w.Detect()
		require.Len(t, matches, 1)
		assert.Equal(t, uint8(position%8), matches[0].Shift)
		assert.GreaterOrEqual(t, len(matches[0].Tail), 4)

		assert.Empty(t, w.Detect())
	})
}

func setBitsMSBFirst(data []byte, pos, n int) {
	for i := 0; i < n; i++ {
		b := pos + i
		data[b/8] |= 1 << (7 - uint(b%8))
	}
}
