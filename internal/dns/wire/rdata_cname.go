package wire

import "fmt"

// CNAMERecord is the rdata of a CNAME record: the canonical name this alias
// resolves to.
type CNAMERecord struct {
	Target string
}

func (CNAMERecord) isRdata() {}

// decodeCNAME decodes a name from the rdlength bytes at r's cursor. It
// builds a bounded sub-reader that shares r's underlying buffer rather than
// copying it, so a compression pointer inside the CNAME target still
// resolves against the enclosing message's absolute offsets.
func decodeCNAME(r *Reader, rdlength uint16) (Rdata, error) {
	start := r.Offset()
	if _, err := r.GetExact(int(rdlength)); err != nil {
		return nil, fmt.Errorf("decode CNAME: %w", err)
	}
	sub := r.window(start, start+int(rdlength))
	target, err := DecodeName(sub)
	if err != nil {
		return nil, fmt.Errorf("decode CNAME: %w", err)
	}
	return CNAMERecord{Target: target}, nil
}
