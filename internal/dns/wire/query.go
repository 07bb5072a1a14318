package wire

import (
	"fmt"

	"github.com/matharman/tinydns/internal/dns/common/log"
	"github.com/matharman/tinydns/internal/dns/domain"
)

// BuildQuery encodes a single-question recursive query into buf, returning
// the number of bytes written. buf's capacity bounds the whole message; a
// name too long to fit fails with ErrNoBuf rather than growing the buffer.
func BuildQuery(buf []byte, id uint16, name string, qtype domain.RRType) (int, error) {
	w := NewWriter(buf)

	header := Header{
		ID:      id,
		Flags:   Flags{RD: true},
		QDCount: 1,
	}
	if err := encodeHeader(w, header); err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	log.Debug(map[string]any{"step": "header_written", "id": id}, "wrote query header")

	if err := EncodeName(w, name); err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	if err := w.PutU16(uint16(qtype)); err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	if err := w.PutU16(uint16(domain.RRClassIN)); err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	log.Debug(map[string]any{"step": "question_written", "name": name, "qtype": qtype.String()}, "wrote question section")

	return w.Written(), nil
}
