package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSRV_Literal(t *testing.T) {
	data := []byte{
		0x00, 0x0a, // priority 10
		0x00, 0x14, // weight 20
		0x01, 0xbb, // port 443
		4, 'h', 'o', 's', 't', 0,
	}
	r := NewReader(data)
	rr, err := decodeSRV(r, uint16(len(data)))
	require.NoError(t, err)
	assert.Equal(t, SRVRecord{Priority: 10, Weight: 20, Port: 443, Target: "host"}, rr)
}

func TestDecodeSRV_CompressedTarget(t *testing.T) {
	data := make([]byte, 12)
	data = append(data, 4, 'h', 'o', 's', 't', 0)
	srvStart := len(data)
	data = append(data,
		0x00, 0x01,
		0x00, 0x02,
		0x00, 0x50,
		0xc0, 12,
	)

	r := NewReader(data)
	sub := r.window(srvStart, len(data))
	rr, err := decodeSRV(sub, uint16(len(data)-srvStart))
	require.NoError(t, err)
	assert.Equal(t, SRVRecord{Priority: 1, Weight: 2, Port: 80, Target: "host"}, rr)
}

func TestDecodeSRV_TooShort(t *testing.T) {
	data := []byte{0x00, 0x01}
	r := NewReader(data)
	_, err := decodeSRV(r, uint16(len(data)))
	assert.ErrorIs(t, err, ErrInvalid)
}
