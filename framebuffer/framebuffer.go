// Package framebuffer byte-aligns the unshifted tail a detection hands
// over, tracking the frame length the caller supplies as more bytes arrive
// and reporting once enough of it has been received. It deliberately knows nothing about
// how the frame's length field is parsed or what happens once the frame is
// complete — both are the caller's job.
package framebuffer

import "fmt"

// FrameBuffer holds the raw, not-yet-aligned tail of a stream starting at
// (or, when Shifts > 0, one partial byte before) a detected syncword. Bytes
// is grown by the caller as more of the stream arrives; FrameLen is filled
// in once the caller has read enough aligned bytes to know the frame's
// length.
type FrameBuffer struct {
	Bytes    []byte
	Shifts   uint8
	FrameLen *int
}

// New creates a FrameBuffer from a detection's (shift, tail) result.
func New(shifts uint8, tail []byte) *FrameBuffer {
	return &FrameBuffer{Bytes: tail, Shifts: shifts}
}

// IsReceived reports whether enough bytes have arrived to cover the frame
// once FrameLen has been set. With no shift, len(Bytes) >= FrameLen
// suffices; with a shift, one extra byte is needed to supply the trailing
// bits of the last aligned byte.
func (f *FrameBuffer) IsReceived() bool {
	if f.FrameLen == nil {
		return false
	}
	if f.Shifts == 0 {
		return len(f.Bytes) >= *f.FrameLen
	}
	return len(f.Bytes) > *f.FrameLen
}

// AlignedLen is the number of fully-aligned bytes currently available.
func (f *FrameBuffer) AlignedLen() int {
	n := len(f.Bytes)
	if f.Shifts == 0 {
		return n
	}
	if n > 0 {
		return n - 1
	}
	return 0
}

// GetAligned returns the fully aligned frame; it requires FrameLen to be
// set and panics otherwise, per the precondition-class errors of §7.
func (f *FrameBuffer) GetAligned() []byte {
	if f.FrameLen == nil {
		panic("framebuffer: GetAligned called before FrameLen is set")
	}
	return f.GetAlignedPart(0, *f.FrameLen)
}

// GetAlignedPart returns bytes[start:end] re-aligned to byte boundaries.
// With no shift this is bytes[start:end] verbatim. With a shift, the
// source range read is [start, end] inclusive — one extra byte supplies
// the low bits of the final output byte — and each output byte is built
// from a pair of consecutive source bytes:
//
//	out[i] = (src[i] << shifts) | (src[i+1] >> (8 - shifts))
//
// It panics if the requested range runs past what Bytes can currently
// cover; that is a programmer error (the precondition class of §7), not a
// recoverable condition.
func (f *FrameBuffer) GetAlignedPart(start, end int) []byte {
	if start < 0 || end < start {
		panic(fmt.Sprintf("framebuffer: invalid range [%d, %d)", start, end))
	}

	if f.Shifts == 0 {
		if end > len(f.Bytes) {
			panic(fmt.Sprintf("framebuffer: range [%d, %d) exceeds %d available bytes", start, end, len(f.Bytes)))
		}
		out := make([]byte, end-start)
		copy(out, f.Bytes[start:end])
		return out
	}

	if end+1 > len(f.Bytes) {
		panic(fmt.Sprintf("framebuffer: range [%d, %d] exceeds %d available bytes", start, end, len(f.Bytes)))
	}

	leftShift := f.Shifts
	rightShift := 8 - leftShift

	unaligned := f.Bytes[start : end+1]
	out := make([]byte, 0, end-start)
	partial := unaligned[0] << leftShift
	for _, b := range unaligned[1:] {
		out = append(out, partial|(b>>rightShift))
		partial = b << leftShift
	}
	return out
}
