package wire

import "fmt"

// UnknownRecord borrows the raw rdata bytes, verbatim, of any record type
// this codec does not decode a structured view for.
type UnknownRecord struct {
	Raw []byte
}

func (UnknownRecord) isRdata() {}

func decodeUnknown(r *Reader, rdlength uint16) (Rdata, error) {
	raw, err := r.GetExact(int(rdlength))
	if err != nil {
		return nil, fmt.Errorf("decode unknown rdata: %w", err)
	}
	return UnknownRecord{Raw: raw}, nil
}
