package xapi

import (
	"context"
	"crypto/tls"
	"net"
	"time"
)

// Dialer opens the raw connection to the server.
// A custom Dialer is responsible for TLS itself.
type Dialer func(ctx context.Context, network, address string) (net.Conn, error)

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithSettleInterval sets the pause between writing a request and reading its response.
func WithSettleInterval(d time.Duration) ConnectorOption {
	return func(c *Connector) {
		if d >= 0 {
			c.settleInterval = d
		}
	}
}

// WithChunkSize sets the size of each socket read.
func WithChunkSize(size int) ConnectorOption {
	return func(c *Connector) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithMaxFrameSize caps the size of a single response.
func WithMaxFrameSize(size int) ConnectorOption {
	return func(c *Connector) {
		if size > 0 {
			c.maxFrameSize = size
		}
	}
}

// WithTLSConfig sets the TLS configuration used by the default dialer.
func WithTLSConfig(cfg *tls.Config) ConnectorOption {
	return func(c *Connector) {
		c.tlsConfig = cfg
	}
}

// WithDialer replaces the default TLS dialer.
func WithDialer(d Dialer) ConnectorOption {
	return func(c *Connector) {
		c.dialer = d
	}
}

// WithJournal records every exchange into j.
func WithJournal(j Journal) ConnectorOption {
	return func(c *Connector) {
		if j != nil {
			c.journal = j
		}
	}
}

// WithMetrics updates m on every exchange.
func WithMetrics(m *Metrics) ConnectorOption {
	return func(c *Connector) {
		c.metrics = m
	}
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHost sets the server host name.
func WithHost(host string) ClientOption {
	return func(c *Client) {
		c.host = host
	}
}

// WithPort sets the server port.
func WithPort(port int) ClientOption {
	return func(c *Client) {
		c.port = port
	}
}

// WithTransport replaces the Connector used by the client.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) {
		c.transport = t
	}
}

// WithConnectorOptions configures the default Connector.
// It has no effect when combined with WithTransport.
func WithConnectorOptions(opts ...ConnectorOption) ClientOption {
	return func(c *Client) {
		c.connectorOpts = append(c.connectorOpts, opts...)
	}
}

// WithLenientDecoding makes the client ignore returnData fields it does not know.
// Such fields are discarded, not kept on the decoded record.
func WithLenientDecoding() ClientOption {
	return func(c *Client) {
		c.strict = false
	}
}
