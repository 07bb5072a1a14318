package wire

import (
	"fmt"
	"strings"

	"github.com/matharman/tinydns/internal/dns/domain"
)

// pointerMask identifies the two high bits that mark a compression pointer
// (RFC 1035 ยง4.1.4). A strict reading requires both bits set; the reserved
// `01`/`10` patterns are malformed and must not be treated as pointers.
const pointerMask = 0xC0

// EncodeName writes name to w as a sequence of length-prefixed labels
// terminated by a zero byte. No compression is ever emitted: every query
// this codec builds spells its name out literally, per spec.
func EncodeName(w *Writer, name string) error {
	trimmed := strings.TrimSuffix(name, ".")
	if err := domain.ValidateName(name); err != nil {
		return fmt.Errorf("encode name: %w: %w", ErrInvalid, err)
	}

	for _, label := range strings.Split(trimmed, ".") {
		if err := w.PutByte(byte(len(label))); err != nil {
			return err
		}
		if err := w.Put([]byte(label)); err != nil {
			return err
		}
	}
	return w.PutByte(0)
}

// isPointer reports whether b carries the strict `11` high-bit pattern that
// marks a compression pointer. The reserved `01`/`10` patterns return false
// here and are rejected as malformed label lengths by the caller, tightening
// the source's `*peek & 0xC0 != 0` check (which also matched those reserved
// patterns) per the spec's resolution of that open question.
func isPointer(b byte) bool {
	return b&pointerMask == pointerMask
}

// DecodeName decodes a (possibly compressed) domain name starting at r's
// current cursor, resolving pointers against r's underlying buffer, and
// returns it in dotted form without a trailing dot and without a leading
// dot: the labels are collected and joined with ".", so no leading dot is
// ever built.
func DecodeName(r *Reader) (string, error) {
	var labels []string
	active := r

	for {
		lenByte, err := active.GetExact(1)
		if err != nil {
			return "", fmt.Errorf("decode name: %w", err)
		}
		length := lenByte[0]

		if length == 0 {
			break
		}

		if isPointer(length) {
			// current is the offset of the pointer's own first byte.
			current := active.Offset() - 1
			lo, err := active.GetExact(1)
			if err != nil {
				return "", fmt.Errorf("decode name: truncated pointer: %w", err)
			}
			target := (int(length&^pointerMask) << 8) | int(lo[0])

			if target >= current {
				return "", fmt.Errorf("decode name: pointer to offset %d at or after current offset %d: %w", target, current, ErrInvalid)
			}

			active = active.window(target, current)
			continue
		}

		if length&pointerMask != 0 {
			// Reserved 01/10 pattern: neither a literal label nor a strict pointer.
			return "", fmt.Errorf("decode name: reserved label length 0x%02x: %w", length, ErrInvalid)
		}

		label, err := active.GetExact(int(length))
		if err != nil {
			return "", fmt.Errorf("decode name: truncated label: %w", err)
		}
		labels = append(labels, string(label))
	}

	return strings.Join(labels, "."), nil
}
