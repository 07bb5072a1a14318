package wire

import "github.com/matharman/tinydns/internal/dns/domain"

// Opcode values relevant to a client: only QUERY is ever emitted, but
// responses may echo any of these back.
const (
	OpcodeQuery  uint8 = 0
	OpcodeIQuery uint8 = 1
	OpcodeStatus uint8 = 2
)

// Flags is the 16-bit flags bundle that follows a message's transaction id.
//
//	 1  1  1  1  1  1
//	 5  4  3  2  1  0  9  8  7  6  5  4  3  2  1  0
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA| Z|AD|CD|   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type Flags struct {
	QR     bool
	Opcode uint8
	AA     bool
	TC     bool
	RD     bool
	RA     bool
	// Z is bit 6, reserved; always encoded as 0 and ignored on decode.
	AD    bool
	CD    bool
	RCode domain.RCode
}

// Header is the fixed 12-byte section every DNS message begins with.
type Header struct {
	ID       uint16
	Flags    Flags
	QDCount  uint16
	ANCount  uint16
	NSCount  uint16
	ARCount  uint16
}

func encodeFlags(f Flags) uint16 {
	var bits uint16
	if f.QR {
		bits |= 1 << 15
	}
	bits |= uint16(f.Opcode&0x0F) << 11
	if f.AA {
		bits |= 1 << 10
	}
	if f.TC {
		bits |= 1 << 9
	}
	if f.RD {
		bits |= 1 << 8
	}
	if f.RA {
		bits |= 1 << 7
	}
	if f.AD {
		bits |= 1 << 5
	}
	if f.CD {
		bits |= 1 << 4
	}
	bits |= uint16(f.RCode) & 0x0F
	return bits
}

func decodeFlags(bits uint16) Flags {
	return Flags{
		QR:     bits&(1<<15) != 0,
		Opcode: uint8(bits>>11) & 0x0F,
		AA:     bits&(1<<10) != 0,
		TC:     bits&(1<<9) != 0,
		RD:     bits&(1<<8) != 0,
		RA:     bits&(1<<7) != 0,
		AD:     bits&(1<<5) != 0,
		CD:     bits&(1<<4) != 0,
		RCode:  domain.RCode(bits & 0x0F),
	}
}

func encodeHeader(w *Writer, h Header) error {
	if err := w.PutU16(h.ID); err != nil {
		return err
	}
	if err := w.PutU16(encodeFlags(h.Flags)); err != nil {
		return err
	}
	for _, count := range []uint16{h.QDCount, h.ANCount, h.NSCount, h.ARCount} {
		if err := w.PutU16(count); err != nil {
			return err
		}
	}
	return nil
}

func decodeHeader(r *Reader) (Header, error) {
	var h Header
	var err error

	if h.ID, err = r.GetU16(); err != nil {
		return Header{}, err
	}
	bits, err := r.GetU16()
	if err != nil {
		return Header{}, err
	}
	h.Flags = decodeFlags(bits)

	if h.QDCount, err = r.GetU16(); err != nil {
		return Header{}, err
	}
	if h.ANCount, err = r.GetU16(); err != nil {
		return Header{}, err
	}
	if h.NSCount, err = r.GetU16(); err != nil {
		return Header{}, err
	}
	if h.ARCount, err = r.GetU16(); err != nil {
		return Header{}, err
	}
	return h, nil
}
