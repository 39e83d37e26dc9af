// Package syncwindow buffers incoming stream bytes as blocks, drives a
// detector over the (possibly wrapped) buffer on demand, and trims the
// buffer so a syncword is never reported twice and one straddling the
// wrap point or a call boundary is still found once enough data has
// arrived.
package syncwindow

import (
	"fmt"

	"github.com/kb2gnd/syncframe/comparator"
	"github.com/kb2gnd/syncframe/detector"
)

// Match is one syncword occurrence: Shift is the number of bits (0..7) the
// first byte of Tail must be rotated left to land on a byte boundary, and
// Tail is the unshifted remainder of the buffer starting at (or, when
// Shift > 0, the byte containing) the match.
type Match struct {
	Shift uint8
	Tail  []byte
}

// Scanner is the shape a fully-configured Window presents to a caller that
// only knows about it through runtime configuration (syncconfig.Build's
// return type): feed it bytes, ask it for matches. Window[B] satisfies this
// for every block type without needing a named adapter, since none of its
// exported methods mention B in their signature.
type Scanner interface {
	Extend(data []byte)
	Detect() []Match
}

// Window accumulates blocks of type B and reports syncword matches found
// by positionFn. It is not constructed directly; use one of the New*
// functions below, each of which wires up the block width and the
// matching Single/Double detector shape.
type Window[B any] struct {
	ring       *ring[B]
	blockSize  int
	decode     func([]byte) B
	encode     func(B, []byte)
	positionFn func([]B) detector.Match
}

func newWindow[B any](blockSize int, decode func([]byte) B, encode func(B, []byte), positionFn func([]B) detector.Match, capacityHintBlocks int) *Window[B] {
	return &Window[B]{
		ring:       newRing[B](capacityHintBlocks),
		blockSize:  blockSize,
		decode:     decode,
		encode:     encode,
		positionFn: positionFn,
	}
}

// NewSingle16 builds a Window over 16-bit blocks driven by a Single16
// detector.
func NewSingle16(cmp comparator.Matcher16, capacityHintBlocks int) *Window[uint16] {
	det := detector.Single16{Comparator: cmp}
	return newWindow(2, decode16, encode16, det.Position, capacityHintBlocks)
}

// NewSingle32 builds a Window over 32-bit blocks driven by a Single32
// detector.
func NewSingle32(cmp comparator.Matcher32, capacityHintBlocks int) *Window[uint32] {
	det := detector.Single32{Comparator: cmp}
	return newWindow(4, decode32, encode32, det.Position, capacityHintBlocks)
}

// NewDouble16 builds a Window over 32-bit blocks (two 16-bit syncwords'
// worth) driven by a Double16 detector.
func NewDouble16(cmp comparator.Matcher16, capacityHintBlocks int) *Window[uint32] {
	det := detector.Double16{Comparator: cmp}
	return newWindow(4, decode32, encode32, det.Position, capacityHintBlocks)
}

// NewDouble32 builds a Window over 64-bit blocks driven by a Double32
// detector.
func NewDouble32(cmp comparator.Matcher32, capacityHintBlocks int) *Window[uint64] {
	det := detector.Double32{Comparator: cmp}
	return newWindow(8, decode64, encode64, det.Position, capacityHintBlocks)
}

func decode16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }
func encode16(v uint16, out []byte) {
	out[0] = byte(v >> 8)
	out[1] = byte(v)
}

func decode32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
func encode32(v uint32, out []byte) {
	out[0] = byte(v >> 24)
	out[1] = byte(v >> 16)
	out[2] = byte(v >> 8)
	out[3] = byte(v)
}

func decode64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}
func encode64(v uint64, out []byte) {
	for i := 7; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
}

// Extend appends bytes to the window. len(bytes) must be a multiple of the
// block size; a violation is a programmer error and panics, per §7.
func (w *Window[B]) Extend(data []byte) {
	if len(data)%w.blockSize != 0 {
		panic(fmt.Sprintf("syncwindow: extend with %d bytes, not a multiple of block size %d", len(data), w.blockSize))
	}
	blockCount := len(data) / w.blockSize
	w.ring.grow(blockCount)
	for i := 0; i < blockCount; i++ {
		chunk := data[i*w.blockSize : (i+1)*w.blockSize]
		w.ring.pushBack(w.decode(chunk))
	}
}

// Detect runs the detector over the current buffer contents, trims the
// buffer so nothing reported is re-reported, and returns every match found
// in the order discovered.
func (w *Window[B]) Detect() []Match {
	var matches []Match

	for w.ring.len() > 0 {
		first, second := w.ring.slices()

		var toRemove int
		if m, blocksBefore, ok := w.detectNext(first, second); ok {
			matches = append(matches, m)
			// Drop through the block containing the match, not just up to
			// it: with that block still at the head, the same syncword
			// would be detected again. This also means a second match
			// starting in the same block as the first is never reported,
			// since its block is gone - a documented limitation, not a
			// bug; see DESIGN.md.
			toRemove = blocksBefore + 1
		} else if len(second) == 0 {
			// Nothing more arrived since the last call: keep the last
			// block as a guard so a syncword straddling it and whatever
			// arrives next is still found.
			toRemove = len(first) - 1
		} else {
			wrap := []B{first[len(first)-1], second[0]}
			if m, blocksBefore, ok := w.detectNext(wrap, second[1:]); ok {
				matches = append(matches, m)
				toRemove = len(first) + blocksBefore
			} else {
				// The wrap point itself is clean; it becomes the head of a
				// contiguous run and gets re-examined on a later pass.
				toRemove = len(first)
			}
		}

		if toRemove == 0 {
			break
		}
		if toRemove >= w.ring.len() {
			w.ring.clear()
		} else {
			w.ring.drop(toRemove)
		}
	}

	return matches
}

func (w *Window[B]) detectNext(haystack, sequel []B) (Match, int, bool) {
	pos := w.positionFn(haystack)
	if !pos.Ok {
		return Match{}, 0, false
	}

	byteIndex := pos.Position / 8
	shift := uint8(pos.Position - byteIndex*8)

	remaining := w.blocksToBytes(haystack)[byteIndex:]
	remaining = append(append([]byte(nil), remaining...), w.blocksToBytes(sequel)...)

	blocksBefore := pos.Position / (w.blockSize * 8)

	return Match{Shift: shift, Tail: remaining}, blocksBefore, true
}

func (w *Window[B]) blocksToBytes(blocks []B) []byte {
	out := make([]byte, len(blocks)*w.blockSize)
	for i, b := range blocks {
		w.encode(b, out[i*w.blockSize:(i+1)*w.blockSize])
	}
	return out
}
