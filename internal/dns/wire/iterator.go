package wire

import (
	"errors"
	"fmt"

	"github.com/matharman/tinydns/internal/dns/common/log"
)

// Iterator is a pull-style cursor over a decoded response message. It parses
// the header and question section up front, then yields one resource record
// at a time from the answer, authority, and additional sections in turn,
// tagging each with the Section it came from.
type Iterator struct {
	r         *Reader
	header    Header
	questions []Question

	anRemaining uint16
	nsRemaining uint16
	arRemaining uint16
}

// NewIterator decodes data's header and question section and returns an
// Iterator positioned at the first resource record, if any. data must remain
// valid for the life of the Iterator and of any RR it yields: TXTRecord and
// UnknownRecord borrow slices directly from it.
func NewIterator(data []byte) (*Iterator, error) {
	r := NewReader(data)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, fmt.Errorf("new iterator: %w", err)
	}

	questions := make([]Question, 0, header.QDCount)
	for i := uint16(0); i < header.QDCount; i++ {
		q, err := decodeQuestion(r)
		if err != nil {
			return nil, fmt.Errorf("new iterator: %w", err)
		}
		questions = append(questions, q)
	}

	log.Debug(map[string]any{
		"step": "header_decoded",
		"id":   header.ID,
		"an":   header.ANCount,
		"ns":   header.NSCount,
		"ar":   header.ARCount,
	}, "decoded response header")

	return &Iterator{
		r:           r,
		header:      header,
		questions:   questions,
		anRemaining: header.ANCount,
		nsRemaining: header.NSCount,
		arRemaining: header.ARCount,
	}, nil
}

// Header returns the message's decoded header, uninspected: callers wanting
// to know whether the server signalled an error check Header().Flags.RCode
// themselves.
func (it *Iterator) Header() Header {
	return it.header
}

// Questions returns the message's decoded question section.
func (it *Iterator) Questions() []Question {
	return it.questions
}

// Next decodes and returns the next resource record along with the section
// it belongs to. It returns ErrExhausted once every record the header
// promised has been yielded.
func (it *Iterator) Next() (RR, Section, error) {
	var section Section
	switch {
	case it.anRemaining > 0:
		section = SectionAnswer
		it.anRemaining--
	case it.nsRemaining > 0:
		section = SectionAuthority
		it.nsRemaining--
	case it.arRemaining > 0:
		section = SectionAdditional
		it.arRemaining--
	default:
		return RR{}, 0, ErrExhausted
	}

	rr, err := decodeRR(it.r)
	if err != nil {
		return RR{}, 0, fmt.Errorf("iterator next: %w", err)
	}

	log.Debug(map[string]any{
		"step":    "record_decoded",
		"section": section.String(),
		"name":    rr.Name,
		"type":    rr.Type.String(),
	}, "decoded resource record")

	return rr, section, nil
}

// ForEach calls fn for every remaining record, in order, stopping and
// returning fn's error the first time it returns one. Reaching the end of
// the message is not an error: ErrExhausted is translated to nil here,
// matching spec.md's NO_BUF-at-exhaustion -> NONE mapping.
func (it *Iterator) ForEach(fn func(RR, Section) error) error {
	for {
		rr, section, err := it.Next()
		if errors.Is(err, ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rr, section); err != nil {
			return err
		}
	}
}
