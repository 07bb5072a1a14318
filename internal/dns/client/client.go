// Package client sends a single DNS query to a single upstream server over
// UDP and returns an iterator over the response. It deliberately has none of
// the retry/failover policy a production resolver would add: one dial, one
// write, one read, per spec.md's transport Non-goals.
package client

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/matharman/tinydns/internal/dns/common/log"
	"github.com/matharman/tinydns/internal/dns/domain"
	"github.com/matharman/tinydns/internal/dns/wire"
)

// Error message constants for consistent error handling, in the teacher's style.
const (
	errServerRequired = "server address is required"
	errFailedToDial   = "failed to dial %s: %w"
	errBuildQuery     = "build query: %w"
	errWriteQuery     = "write query: %w"
	errReadResponse   = "read response: %w"
)

// maxMessageSize is the largest UDP response this client will accept, per
// the classic (non-EDNS) DNS message size limit.
const maxMessageSize = 512

// DialFunc establishes a network connection; overridable for testing.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Client queries a single upstream DNS server over UDP.
type Client struct {
	server  string
	timeout time.Duration
	dial    DialFunc
}

// Options configures a Client.
type Options struct {
	// Server is the upstream server address. If it carries no port, Port is
	// appended.
	Server string
	Port   int
	// Timeout bounds the whole dial+write+read exchange.
	Timeout time.Duration
	// Dial overrides how the UDP connection is established; nil uses
	// net.Dialer.DialContext.
	Dial DialFunc
}

// New creates a Client from opts, applying a default timeout and dialer.
func New(opts Options) (*Client, error) {
	if opts.Server == "" {
		return nil, fmt.Errorf(errServerRequired)
	}
	server := opts.Server
	if _, _, err := net.SplitHostPort(server); err != nil {
		port := opts.Port
		if port == 0 {
			port = 53
		}
		server = net.JoinHostPort(server, fmt.Sprintf("%d", port))
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	return &Client{server: server, timeout: opts.Timeout, dial: opts.Dial}, nil
}

// Query builds a recursive query for name/qtype, sends it to the server, and
// returns an iterator over the parsed response. The response buffer backing
// the iterator is owned by the returned Iterator's caller for as long as any
// RR decoded from it (TXTRecord, UnknownRecord) is in use.
func (c *Client) Query(ctx context.Context, id uint16, name string, qtype domain.RRType) (*wire.Iterator, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	buf := make([]byte, maxMessageSize)
	n, err := wire.BuildQuery(buf, id, name, qtype)
	if err != nil {
		return nil, fmt.Errorf(errBuildQuery, err)
	}

	log.Debug(map[string]any{"server": c.server, "name": name, "qtype": qtype}, "sending query")

	conn, err := c.dial(ctx, "udp", c.server)
	if err != nil {
		return nil, fmt.Errorf(errFailedToDial, c.server, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(buf[:n]); err != nil {
		return nil, fmt.Errorf(errWriteQuery, err)
	}

	respBuf := make([]byte, maxMessageSize)
	read, err := conn.Read(respBuf)
	if err != nil {
		return nil, fmt.Errorf(errReadResponse, err)
	}

	log.Debug(map[string]any{"server": c.server, "bytes": read}, "received response")

	it, err := wire.NewIterator(respBuf[:read])
	if err != nil {
		return nil, err
	}
	return it, nil
}
