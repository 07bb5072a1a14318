package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeCNAME_CompressedTarget builds a full message buffer with a name
// at offset 12 and a CNAME rdata, later in the same buffer, that points back
// to it. decodeCNAME must resolve the pointer against the whole message, not
// just the rdlength-bounded slice it was handed.
func TestDecodeCNAME_CompressedTarget(t *testing.T) {
	data := make([]byte, 12)
	data = append(data, 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0)
	rdataStart := len(data)
	data = append(data, 0xc0, 12)

	r := NewReader(data)
	r2 := r.window(rdataStart, len(data))

	rr, err := decodeCNAME(r2, 2)
	require.NoError(t, err)
	assert.Equal(t, CNAMERecord{Target: "example.com"}, rr)
}

func TestDecodeCNAME_Literal(t *testing.T) {
	data := []byte{4, 'a', 'l', 'i', 'a', 's', 0}
	r := NewReader(data)
	rr, err := decodeCNAME(r, uint16(len(data)))
	require.NoError(t, err)
	assert.Equal(t, CNAMERecord{Target: "alias"}, rr)
}
