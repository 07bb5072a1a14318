package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeA(t *testing.T) {
	r := NewReader([]byte{93, 184, 216, 34})
	rr, err := decodeA(r, 4)
	require.NoError(t, err)
	assert.Equal(t, ARecord{Addr: [4]byte{93, 184, 216, 34}}, rr)
}

func TestDecodeA_WrongLength(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := decodeA(r, 3)
	assert.ErrorIs(t, err, ErrInvalid)
}
