package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/0x5487/xapi"
	"github.com/0x5487/xapi/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUsage(t *testing.T) {
	t.Setenv(xapi.PasswordEnv, "")

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"NoCommand", nil, 2},
		{"UnknownCommand", []string{"trade"}, 2},
		{"MissingSymbol", []string{"symbol"}, 2},
		{"TooManyArgs", []string{"version", "extra"}, 2},
		{"BadVolume", []string{"commission", "EURPLN", "lots"}, 2},
		{"BadPort", []string{"--port", "70000", "version"}, 1},
		{"MissingConfig", []string{"--config", "/nonexistent/xapi.yaml", "version"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			assert.Equal(t, tc.code, code, stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}

func TestDispatch(t *testing.T) {
	client := xapi.NewClient()

	for _, args := range [][]string{
		{"version"},
		{"server-time"},
		{"symbols"},
		{"user"},
		{"margin-level"},
		{"calendar"},
		{"step-rules"},
		{"symbol", "EURPLN"},
		{"commission", "EURPLN", "0.1"},
	} {
		call, err := dispatch(client, args)
		require.NoError(t, err, args)
		assert.NotNil(t, call, args)
	}

	_, err := dispatch(client, []string{"commission", "EURPLN"})
	assert.ErrorIs(t, err, errUsage)
}

// serve answers login, getVersion and logout on one side of a pipe.
func serve(conn net.Conn) {
	defer conn.Close()

	dec := json.NewDecoder(conn)
	for {
		var req struct {
			Command   string `json:"command"`
			CustomTag string `json:"customTag"`
		}
		if err := dec.Decode(&req); err != nil {
			return
		}

		resp := map[string]any{"status": true, "customTag": req.CustomTag}
		switch req.Command {
		case "login":
			resp["streamSessionId"] = "8469308861804289383"
		case "getVersion":
			resp["returnData"] = map[string]any{"version": "2.5.0"}
		}
		out, _ := json.Marshal(resp)
		if _, err := conn.Write(append(out, '\n', '\n')); err != nil {
			return
		}
	}
}

func TestExecute(t *testing.T) {
	journal := xapi.NewMemoryJournal()
	client := xapi.NewClient(xapi.WithConnectorOptions(
		xapi.WithSettleInterval(0),
		xapi.WithJournal(journal),
		xapi.WithDialer(func(ctx context.Context, network, address string) (net.Conn, error) {
			c, s := net.Pipe()
			go serve(s)
			return c, nil
		}),
	))

	cfg := xapi.DefaultConfig()
	cfg.UserID = "12345"
	cfg.Password = "secret"

	result, err := execute(context.Background(), client, cfg, []string{"version"})
	require.NoError(t, err)

	version, ok := result.(*protocol.Version)
	require.True(t, ok)
	assert.Equal(t, "2.5.0", version.Version)

	assert.Equal(t, []string{"login", "getVersion", "logout"}, journal.Commands())
	assert.False(t, client.IsConnected())
}
