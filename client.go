package xapi

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/0x5487/xapi/protocol"
)

// Client exposes one method per remote command on top of a Transport.
// It tracks whether the session is logged in so that Close can log out first.
// A Client is safe for concurrent use; requests are still sent one at a time.
type Client struct {
	host          string
	port          int
	transport     Transport
	connectorOpts []ConnectorOption
	serializer    protocol.Serializer
	strict        bool

	// sessionMu serializes Login, Logout and Close and guards loggedIn.
	sessionMu sync.Mutex
	loggedIn  bool
}

// NewClient creates a client for DefaultHost:DefaultPort unless options say otherwise.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		host:   DefaultHost,
		port:   DefaultPort,
		strict: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewConnector(c.connectorOpts...)
	}
	c.serializer = protocol.NewJSONSerializer("", c.strict)
	return c
}

// Connect opens the connection.
// Returns ErrAlreadyConnected if Connect was called more than once before Close.
func (c *Client) Connect(ctx context.Context) error {
	return c.transport.Connect(ctx, c.host, c.port)
}

// Close closes the connection, logging out first if Login was called.
// The socket is closed even when that logout fails.
// Returns ErrNotConnected if Close is called before Connect.
func (c *Client) Close(ctx context.Context) error {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	var errs []error
	if c.transport.IsConnected() && c.loggedIn {
		if _, err := c.logout(ctx); err != nil {
			logger.Warn("logout before close failed", "error", err)
			c.loggedIn = false
			errs = append(errs, err)
		}
	}
	if err := c.transport.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// IsConnected reports whether the connection is open.
func (c *Client) IsConnected() bool {
	return c.transport.IsConnected()
}

// IsLoggedIn reports whether Login succeeded and Logout was not called since.
func (c *Client) IsLoggedIn() bool {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.loggedIn
}

// Login authenticates the session. appName is optional.
func (c *Client) Login(ctx context.Context, userID, password, appName string) (*protocol.LoginResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidParam)
	}

	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	resp, err := c.transport.HandleCommand(ctx, protocol.CmdLogin, &protocol.LoginArguments{
		UserID:   userID,
		Password: password,
		AppName:  appName,
	})
	if err != nil {
		return nil, err
	}

	c.loggedIn = true
	logger.Info("logged in", "user_id", userID)
	return &protocol.LoginResponse{
		Status:          resp.OK(),
		StreamSessionID: resp.StreamSessionID,
	}, nil
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) (*protocol.Response, error) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.logout(ctx)
}

// logout must be called with sessionMu held.
func (c *Client) logout(ctx context.Context) (*protocol.Response, error) {
	resp, err := c.transport.HandleCommand(ctx, protocol.CmdLogout, nil)
	if err != nil {
		return nil, err
	}

	c.loggedIn = false
	logger.Info("logged out")
	return resp, nil
}

// query sends command and decodes returnData into T.
func query[T any](ctx context.Context, c *Client, command string, arguments any) (T, error) {
	var out T

	resp, err := c.transport.HandleCommand(ctx, command, arguments)
	if err != nil {
		return out, err
	}

	if !resp.HasReturnData() {
		return out, fmt.Errorf("%w: %s", ErrEmptyReturnData, command)
	}

	if err := c.serializer.Unmarshal(resp.ReturnData, &out); err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrDecodeReturnData, command, err)
	}
	return out, nil
}
