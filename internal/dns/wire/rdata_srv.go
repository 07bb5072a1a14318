package wire

import "fmt"

// SRVRecord is the rdata of an SRV record (RFC 2782): a service's priority,
// weight, and port, plus the target host providing it.
type SRVRecord struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (SRVRecord) isRdata() {}

// decodeSRV reads the three fixed 16-bit fields, then decodes the target as
// a name against the enclosing message (its own sub-reader is unnecessary:
// a name reader's bound only matters for names embedded in rdata that must
// not escape that rdata's own rdlength, and SRV's target is the final field
// in its rdata, so reading it directly off r is equivalent and simpler).
func decodeSRV(r *Reader, rdlength uint16) (Rdata, error) {
	if rdlength < 7 {
		return nil, fmt.Errorf("decode SRV: rdlength %d too short for fixed fields: %w", rdlength, ErrInvalid)
	}

	var rr SRVRecord
	var err error
	if rr.Priority, err = r.GetU16(); err != nil {
		return nil, fmt.Errorf("decode SRV: %w", err)
	}
	if rr.Weight, err = r.GetU16(); err != nil {
		return nil, fmt.Errorf("decode SRV: %w", err)
	}
	if rr.Port, err = r.GetU16(); err != nil {
		return nil, fmt.Errorf("decode SRV: %w", err)
	}
	if rr.Target, err = DecodeName(r); err != nil {
		return nil, fmt.Errorf("decode SRV: %w", err)
	}
	return rr, nil
}
