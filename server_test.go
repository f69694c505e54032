package xapi

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMain(m *testing.M) {
	SetLogger(nil)
	os.Exit(m.Run())
}

// request is an envelope as seen by the fake server.
type request struct {
	Command   string         `json:"command"`
	Arguments map[string]any `json:"arguments"`
	CustomTag string         `json:"customTag"`
}

// replyFunc answers a request. A map is sent as JSON with the request's
// customTag added unless present, a string is sent verbatim, nil hangs up.
type replyFunc func(req request) any

// fakeServer speaks the wire protocol over in-memory pipes.
type fakeServer struct {
	reply replyFunc
	dials atomic.Int32

	mu       sync.Mutex
	requests []request
}

func newFakeServer(reply replyFunc) *fakeServer {
	if reply == nil {
		reply = defaultReply
	}
	return &fakeServer{reply: reply}
}

func (s *fakeServer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	s.dials.Add(1)
	client, server := net.Pipe()
	go s.serve(server)
	return client, nil
}

func (s *fakeServer) serve(conn net.Conn) {
	defer conn.Close()

	// encoding/json stops at the closing brace without reading ahead
	dec := json.NewDecoder(conn)
	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			return
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		var out []byte
		switch r := s.reply(req).(type) {
		case string:
			out = []byte(r)
		case map[string]any:
			if _, ok := r["customTag"]; !ok {
				r["customTag"] = req.CustomTag
			}
			b, err := json.Marshal(r)
			if err != nil {
				return
			}
			out = b
		default:
			return
		}

		if _, err := conn.Write(append(out, terminator...)); err != nil {
			return
		}
	}
}

func (s *fakeServer) Requests() []request {
	s.mu.Lock()
	defer s.mu.Unlock()

	reqs := make([]request, len(s.requests))
	copy(reqs, s.requests)
	return reqs
}

func (s *fakeServer) Commands() []string {
	reqs := s.Requests()
	commands := make([]string, len(reqs))
	for i, req := range reqs {
		commands[i] = req.Command
	}
	return commands
}

// newTestClient returns a client wired to a fake server, with no settle interval.
func newTestClient(t *testing.T, reply replyFunc, opts ...ClientOption) (*Client, *fakeServer, *MemoryJournal) {
	t.Helper()

	server := newFakeServer(reply)
	journal := NewMemoryJournal()
	opts = append([]ClientOption{
		WithConnectorOptions(
			WithDialer(server.Dial),
			WithSettleInterval(0),
			WithJournal(journal),
		),
	}, opts...)
	return NewClient(opts...), server, journal
}

func ok(returnData any) map[string]any {
	return map[string]any{"status": true, "returnData": returnData}
}

func symbolData(name string) map[string]any {
	return map[string]any{
		"symbol":            name,
		"ask":               4.2926,
		"bid":               4.2902,
		"categoryName":      "FX",
		"contractSize":      100000,
		"currency":          name[:3],
		"currencyPair":      true,
		"currencyProfit":    name[3:],
		"description":       name,
		"expiration":        nil,
		"groupName":         "Minor",
		"lotMin":            0.01,
		"lotStep":           0.01,
		"lotMax":            10.0,
		"marginMaintenance": nil,
		"precision":         4,
		"starting":          nil,
		"time":              1272446136891,
		"timeString":        "Thu May 23 12:23:44 EDT 2013",
		"type":              21,
	}
}

func defaultReply(req request) any {
	switch req.Command {
	case "login":
		return map[string]any{"status": true, "streamSessionId": "8469308861804289383"}
	case "logout", "ping":
		return map[string]any{"status": true}
	case "getVersion":
		return ok(map[string]any{"version": "2.5.0"})
	case "getServerTime":
		return ok(map[string]any{"time": 1392211379731, "timeString": "Feb 12, 2014 2:22:59 PM"})
	case "getSymbol":
		return ok(symbolData(req.Arguments["symbol"].(string)))
	case "getAllSymbols":
		return ok([]any{symbolData("EURPLN"), symbolData("EURUSD"), symbolData("USDJPY")})
	case "getCommissionDef":
		return ok(map[string]any{"commission": 0.0, "rateOfExchange": 1.0})
	}
	return map[string]any{"status": false, "errorCode": "EX007", "errorDescr": "Unknown command " + req.Command}
}
