package xapi

import "time"

const (
	// ClientVersion is the current version of this library
	ClientVersion = "v1.0.0"

	DefaultHost = "xapi.xtb.com"
	DemoPort    = 5124
	RealPort    = 5112
	DefaultPort = DemoPort

	// DefaultSettleInterval is the pause between writing a request and reading
	// its response. The server drops clients that send faster than this.
	DefaultSettleInterval = 200 * time.Millisecond
	DefaultChunkSize      = 8192
	DefaultMaxFrameSize   = 16 << 20

	jsonIndent = "    "
)

// terminator ends every response frame on the wire.
var terminator = []byte("\n\n")
