package wire

import "fmt"

// ARecord is the rdata of an A record: a 4-byte IPv4 address.
type ARecord struct {
	Addr [4]byte
}

func (ARecord) isRdata() {}

func decodeA(r *Reader, rdlength uint16) (Rdata, error) {
	if rdlength != 4 {
		return nil, fmt.Errorf("decode A: rdlength %d, want 4: %w", rdlength, ErrInvalid)
	}
	var rr ARecord
	if err := r.GetCopy(rr.Addr[:]); err != nil {
		return nil, fmt.Errorf("decode A: %w", err)
	}
	return rr, nil
}
