package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/matharman/tinydns/internal/dns/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeConn implements net.Conn, returning a canned response on Read.
type fakeConn struct {
	mock.Mock
	response []byte
}

func (f *fakeConn) Read(b []byte) (int, error) {
	args := f.Called(b)
	if f.response != nil {
		copy(b, f.response)
		return len(f.response), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

func (f *fakeConn) Write(b []byte) (int, error) {
	args := f.Called(b)
	return args.Int(0), args.Error(1)
}

func (f *fakeConn) Close() error                       { return nil }
func (f *fakeConn) LocalAddr() net.Addr                { return nil }
func (f *fakeConn) RemoteAddr() net.Addr               { return nil }
func (f *fakeConn) SetDeadline(t time.Time) error      { return nil }
func (f *fakeConn) SetReadDeadline(t time.Time) error  { return nil }
func (f *fakeConn) SetWriteDeadline(t time.Time) error { return nil }

func buildFakeResponse(t *testing.T) []byte {
	t.Helper()
	return []byte{
		0xdb, 0x42,
		0x81, 0x80,
		0x00, 0x01,
		0x00, 0x01,
		0x00, 0x00,
		0x00, 0x00,
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0x00, 0x01,
		0x00, 0x01,
		0xc0, 12,
		0x00, 0x01,
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x3c,
		0x00, 0x04,
		93, 184, 216, 34,
	}
}

func TestClient_Query(t *testing.T) {
	resp := buildFakeResponse(t)
	conn := &fakeConn{response: resp}
	conn.On("Write", mock.Anything).Return(0, nil)
	conn.On("Read", mock.Anything).Return(0, nil)

	c, err := New(Options{
		Server: "127.0.0.1",
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			return conn, nil
		},
	})
	require.NoError(t, err)

	it, err := c.Query(context.Background(), 0xdb42, "example.com", domain.RRTypeA)
	require.NoError(t, err)

	rr, section, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "example.com", rr.Name)
	assert.Equal(t, domain.RRTypeA, rr.Type)
	_ = section
}

func TestClient_Query_DialError(t *testing.T) {
	c, err := New(Options{
		Server: "127.0.0.1",
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		},
	})
	require.NoError(t, err)

	_, err = c.Query(context.Background(), 1, "example.com", domain.RRTypeA)
	assert.Error(t, err)
}

func TestClient_Query_WriteError(t *testing.T) {
	conn := &fakeConn{}
	conn.On("Write", mock.Anything).Return(0, errors.New("write failed"))

	c, err := New(Options{
		Server: "127.0.0.1",
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			return conn, nil
		},
	})
	require.NoError(t, err)

	_, err = c.Query(context.Background(), 1, "example.com", domain.RRTypeA)
	assert.Error(t, err)
}

func TestNew_ServerRequired(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_AppendsDefaultPort(t *testing.T) {
	c, err := New(Options{Server: "1.1.1.1"})
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1:53", c.server)
}

func TestNew_KeepsExplicitPort(t *testing.T) {
	c, err := New(Options{Server: "1.1.1.1:9953"})
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1:9953", c.server)
}
