package wire

import "github.com/matharman/tinydns/internal/dns/domain"

// RR is a single decoded resource record: the fixed name/type/class/ttl/
// rdlength fields common to every section, plus the type-specific Rdata the
// codec was able to parse.
type RR struct {
	Name     string
	Type     domain.RRType
	Class    domain.RRClass
	TTL      uint32
	RDLength uint16
	Rdata    Rdata
}

// decodeRR decodes one resource record at r's cursor: a name, the four
// fixed fields, and rdlength bytes of type-specific rdata.
func decodeRR(r *Reader) (RR, error) {
	var rr RR
	var err error

	if rr.Name, err = DecodeName(r); err != nil {
		return RR{}, err
	}

	typeBits, err := r.GetU16()
	if err != nil {
		return RR{}, err
	}
	rr.Type = domain.RRType(typeBits)

	classBits, err := r.GetU16()
	if err != nil {
		return RR{}, err
	}
	rr.Class = domain.RRClass(classBits)

	if rr.TTL, err = r.GetU32(); err != nil {
		return RR{}, err
	}

	if rr.RDLength, err = r.GetU16(); err != nil {
		return RR{}, err
	}

	start := r.Offset()
	rdataReader := r.window(start, start+int(rr.RDLength))
	rr.Rdata, err = decodeRdata(rdataReader, rr.Type, rr.RDLength)
	if err != nil {
		return RR{}, err
	}

	// Advance r past the rdata regardless of how much of it rdataReader's own
	// cursor consumed (decodeTXT reads only the first character-string, so
	// it can leave the sub-reader's cursor short of rdlength on success).
	if _, err := r.GetExact(int(rr.RDLength)); err != nil {
		return RR{}, err
	}

	return rr, nil
}
