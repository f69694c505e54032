package xapi

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/0x5487/xapi/protocol"
	"github.com/rs/xid"
)

// Transport is what the Client needs from a connection.
// Connector is the only implementation shipped with this package.
type Transport interface {
	Connect(ctx context.Context, host string, port int) error
	Close() error
	IsConnected() bool
	HandleCommand(ctx context.Context, command string, arguments any) (*protocol.Response, error)
}

// Connector owns one TLS socket and exchanges framed JSON documents over it.
// Calls are serialized: one request/response pair is outstanding at a time.
type Connector struct {
	mu     sync.Mutex
	conn   net.Conn
	frames *frameReader

	serializer     protocol.Serializer
	settleInterval time.Duration
	chunkSize      int
	maxFrameSize   int
	tlsConfig      *tls.Config
	dialer         Dialer
	journal        Journal
	metrics        *Metrics

	// tags of requests whose reply was not read before they failed
	abandoned map[string]struct{}
}

// NewConnector creates a closed Connector.
func NewConnector(opts ...ConnectorOption) *Connector {
	c := &Connector{
		serializer:     protocol.NewJSONSerializer(jsonIndent, false),
		settleInterval: DefaultSettleInterval,
		chunkSize:      DefaultChunkSize,
		maxFrameSize:   DefaultMaxFrameSize,
		journal:        NewDiscardJournal(),
		abandoned:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect opens the socket to host:port.
// Returns ErrAlreadyConnected if the socket is already open.
func (c *Connector) Connect(ctx context.Context, host string, port int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return ErrAlreadyConnected
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := c.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}

	c.conn = conn
	c.frames = newFrameReader(conn, c.chunkSize, c.maxFrameSize)
	clear(c.abandoned)
	c.metrics.setConnected(true)
	logger.Info("connected", "addr", addr)
	return nil
}

func (c *Connector) dial(ctx context.Context, addr string) (net.Conn, error) {
	if c.dialer != nil {
		return c.dialer(ctx, "tcp", addr)
	}
	d := &tls.Dialer{Config: c.tlsConfig}
	return d.DialContext(ctx, "tcp", addr)
}

// Close closes the socket.
// Returns ErrNotConnected if the socket is not open.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	err := c.conn.Close()
	c.conn = nil
	c.frames = nil
	clear(c.abandoned)
	c.metrics.setConnected(false)
	logger.Info("connection closed")
	return err
}

// IsConnected reports whether the socket is open.
func (c *Connector) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// HandleCommand sends one envelope and blocks until its response arrives.
// A response with status false is returned as *APIError.
// The deadline of ctx, if any, bounds the whole exchange. When a request
// times out after it was sent, its late reply is skipped by the next call.
func (c *Connector) HandleCommand(ctx context.Context, command string, arguments any) (*protocol.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrUseWithoutConnect
	}

	ex := &Exchange{
		Command:   command,
		CustomTag: xid.New().String(),
		StartedAt: time.Now(),
	}

	resp, sent, err := c.roundTrip(ctx, ex.CustomTag, command, arguments)
	if err != nil && sent && isTimeout(err) {
		c.abandoned[ex.CustomTag] = struct{}{}
	}
	ex.Duration = time.Since(ex.StartedAt)

	result := resultOK
	if err == nil && !resp.OK() {
		apiErr := newAPIError(resp.ErrorCode, resp.ErrorDescr)
		ex.ErrorCode = apiErr.Code
		err = apiErr
		result = resultAPIError
	} else if err != nil {
		result = resultError
	}
	ex.Err = err

	c.journal.Record(ex)
	c.metrics.observe(command, result, ex.Duration)
	logger.Debug("command handled", "command", command, "custom_tag", ex.CustomTag, "duration", ex.Duration, "result", result)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Connector) roundTrip(ctx context.Context, tag, command string, arguments any) (resp *protocol.Response, sent bool, err error) {
	packet, err := c.serializer.Marshal(&protocol.Envelope{
		Command:   command,
		Arguments: arguments,
		CustomTag: tag,
	})
	if err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", command, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetDeadline(deadline); err != nil {
			return nil, false, err
		}
		defer func() {
			_ = c.conn.SetDeadline(time.Time{})
		}()
	}

	if n := c.frames.Buffered(); n > 0 {
		logger.Warn("unread bytes pending before request", "command", command, "bytes", n)
	}

	if _, err := c.conn.Write(packet); err != nil {
		return nil, false, fmt.Errorf("send %s: %w", command, err)
	}

	if err := c.settle(ctx); err != nil {
		return nil, true, err
	}

	for {
		frame, err := c.frames.ReadFrame()
		if err != nil {
			return nil, true, err
		}

		resp := &protocol.Response{}
		if err := c.serializer.Unmarshal(frame, resp); err != nil {
			return nil, true, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		if resp.CustomTag == "" || resp.CustomTag == tag {
			return resp, true, nil
		}
		if _, late := c.abandoned[resp.CustomTag]; late {
			delete(c.abandoned, resp.CustomTag)
			logger.Warn("skipping late response", "command", command, "custom_tag", resp.CustomTag)
			continue
		}
		return nil, true, fmt.Errorf("%w: sent %s, got %s", ErrTagMismatch, tag, resp.CustomTag)
	}
}

// isTimeout reports whether err is a context or socket deadline error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Connector) settle(ctx context.Context) error {
	if c.settleInterval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.settleInterval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

