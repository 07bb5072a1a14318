package wire

import (
	"fmt"

	"github.com/matharman/tinydns/internal/dns/domain"
)

// Section identifies which part of a response a decoded RR came from.
type Section int

const (
	SectionAnswer Section = iota
	SectionAuthority
	SectionAdditional
)

func (s Section) String() string {
	switch s {
	case SectionAnswer:
		return "ANSWER"
	case SectionAuthority:
		return "AUTHORITY"
	case SectionAdditional:
		return "ADDITIONAL"
	default:
		return "UNKNOWN"
	}
}

// Question is the single entry of a message's question section.
type Question struct {
	Name  string
	Type  domain.RRType
	Class domain.RRClass
}

// decodeQuestion decodes one question-section entry: a name followed by a
// 16-bit qtype and qclass.
func decodeQuestion(r *Reader) (Question, error) {
	var q Question
	var err error

	if q.Name, err = DecodeName(r); err != nil {
		return Question{}, fmt.Errorf("decode question: %w", err)
	}

	typeBits, err := r.GetU16()
	if err != nil {
		return Question{}, fmt.Errorf("decode question: %w", err)
	}
	q.Type = domain.RRType(typeBits)

	classBits, err := r.GetU16()
	if err != nil {
		return Question{}, fmt.Errorf("decode question: %w", err)
	}
	q.Class = domain.RRClass(classBits)

	return q, nil
}
