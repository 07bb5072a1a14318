package wire

import "fmt"

// AAAARecord is the rdata of an AAAA record: a 16-byte IPv6 address.
type AAAARecord struct {
	Addr [16]byte
}

func (AAAARecord) isRdata() {}

func decodeAAAA(r *Reader, rdlength uint16) (Rdata, error) {
	if rdlength != 16 {
		return nil, fmt.Errorf("decode AAAA: rdlength %d, want 16: %w", rdlength, ErrInvalid)
	}
	var rr AAAARecord
	if err := r.GetCopy(rr.Addr[:]); err != nil {
		return nil, fmt.Errorf("decode AAAA: %w", err)
	}
	return rr, nil
}
