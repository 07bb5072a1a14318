package wire

import "fmt"

// TXTRecord is the rdata of a TXT record: a single character-string,
// borrowed directly from the response buffer. Multi-string TXT records are
// not supported; only the first character-string in the rdata is captured,
// matching tinydns's original behavior.
type TXTRecord struct {
	Text []byte
}

func (TXTRecord) isRdata() {}

func decodeTXT(r *Reader, rdlength uint16) (Rdata, error) {
	prefix, err := r.GetExact(1)
	if err != nil {
		return nil, fmt.Errorf("decode TXT: %w", err)
	}
	length := int(prefix[0])

	text, err := r.GetExact(length)
	if err != nil {
		return nil, fmt.Errorf("decode TXT: %w", err)
	}

	return TXTRecord{Text: text}, nil
}
