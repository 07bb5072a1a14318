package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader is a bounded cursor over a caller-owned byte slice. It never copies
// the underlying buffer and never allocates; every accessor advances the
// cursor by exactly the number of bytes it reports consuming, or not at all.
type Reader struct {
	base     []byte
	pos      int
	remaining int
}

// NewReader wraps data in a Reader positioned at its first byte.
func NewReader(data []byte) *Reader {
	return &Reader{base: data, pos: 0, remaining: len(data)}
}

// Offset returns the cursor's absolute position from the start of the
// underlying buffer. Compression-pointer resolution measures target offsets
// against this value.
func (r *Reader) Offset() int {
	return r.pos
}

// Len returns the total length of the underlying buffer, independent of the
// cursor position.
func (r *Reader) Len() int {
	return len(r.base)
}

// Base returns the full underlying buffer, for constructing sub-readers that
// must resolve compression pointers against the enclosing message.
func (r *Reader) Base() []byte {
	return r.base
}

// Peek returns up to n bytes at the cursor without advancing it. It returns
// fewer than n bytes if fewer remain, and ErrNoBuf if none remain at all.
func (r *Reader) Peek(n int) ([]byte, error) {
	if r.remaining == 0 {
		return nil, ErrNoBuf
	}
	if n > r.remaining {
		n = r.remaining
	}
	return r.base[r.pos : r.pos+n], nil
}

// GetRaw returns a pointer into the buffer at the cursor and advances the
// cursor by the number of bytes returned, identically to Peek.
func (r *Reader) GetRaw(n int) ([]byte, error) {
	b, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.pos += len(b)
	r.remaining -= len(b)
	return b, nil
}

// GetExact behaves like GetRaw but fails with ErrNoBuf if fewer than n bytes
// are available, rather than silently truncating. Fixed-width wire fields
// (header counts, rdata of a known length) all use this.
func (r *Reader) GetExact(n int) ([]byte, error) {
	if n > r.remaining {
		return nil, fmt.Errorf("need %d bytes, %d remain: %w", n, r.remaining, ErrNoBuf)
	}
	return r.GetRaw(n)
}

// GetCopy copies exactly len(dst) bytes from the cursor into dst.
func (r *Reader) GetCopy(dst []byte) error {
	b, err := r.GetExact(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// GetU16 decodes a big-endian uint16 at the cursor and advances it by 2.
func (r *Reader) GetU16() (uint16, error) {
	var buf [2]byte
	if err := r.GetCopy(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// GetU32 decodes a big-endian uint32 at the cursor and advances it by 4.
func (r *Reader) GetU32() (uint32, error) {
	var buf [4]byte
	if err := r.GetCopy(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// window returns a new Reader sharing this reader's underlying buffer but
// cursored at pos with its remaining bytes capped at end-pos, regardless of
// how much of the real buffer follows. Compression-pointer resolution uses
// this to bound a hop's traversal without ever copying message bytes: the
// returned reader can still resolve pointers against the full original
// buffer (via Base/Offset), but cannot read past end.
func (r *Reader) window(pos, end int) *Reader {
	return &Reader{base: r.base, pos: pos, remaining: end - pos}
}

// Remaining reports how many unread bytes remain.
func (r *Reader) Remaining() int {
	return r.remaining
}

// Empty reports whether the reader has no unread bytes left.
func (r *Reader) Empty() bool {
	return r.remaining == 0
}
