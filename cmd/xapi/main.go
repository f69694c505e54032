// Command xapi runs a single read-only command against the trading server
// and prints the decoded reply as JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/0x5487/xapi"
	"github.com/goccy/go-json"
	"github.com/juju/gnuflag"
)

const usage = `usage: xapi [flags] <command> [args]

commands:
  version                  API version of the server
  server-time              current server time
  symbols                  all symbols
  symbol <SYMBOL>          one symbol
  user                     current user data
  margin-level             account indicators
  calendar                 market events
  step-rules               DMA step rules
  commission <SYMBOL> <VOLUME>
                           commission for a trade

The password is read from the config file or from $XAPI_PASSWORD.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	xapi.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	var (
		configPath string
		host       string
		port       int
		user       string
		appName    string
		timeout    time.Duration
	)
	fs := gnuflag.NewFlagSet("xapi", gnuflag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&host, "host", "", "server host (overrides config)")
	fs.IntVar(&port, "port", 0, "server port (overrides config)")
	fs.StringVar(&user, "user", "", "user id (overrides config)")
	fs.StringVar(&appName, "app", "", "application name sent on login")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "deadline for the whole run")
	if err := fs.Parse(true, args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if host != "" {
		cfg.Host = host
	}
	if port != 0 {
		cfg.Port = port
	}
	if user != "" {
		cfg.UserID = user
	}
	if appName != "" {
		cfg.AppName = appName
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := execute(ctx, xapi.NewClient(cfg.ClientOptions()...), cfg, fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		return 1
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func loadConfig(path string) (*xapi.Config, error) {
	if path != "" {
		return xapi.LoadConfig(path)
	}
	cfg := xapi.DefaultConfig()
	cfg.Password = os.Getenv(xapi.PasswordEnv)
	return cfg, nil
}

var errUsage = errors.New("invalid command line")

func execute(ctx context.Context, client *xapi.Client, cfg *xapi.Config, args []string) (result any, err error) {
	call, err := dispatch(client, args)
	if err != nil {
		return nil, err
	}

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, client.Close(ctx))
	}()

	if _, err := client.Login(ctx, cfg.UserID, cfg.Password, cfg.AppName); err != nil {
		return nil, err
	}
	return call(ctx)
}

func dispatch(client *xapi.Client, args []string) (func(context.Context) (any, error), error) {
	name, rest := args[0], args[1:]
	wantArgs := func(n int) error {
		if len(rest) != n {
			return fmt.Errorf("%w: %s takes %d argument(s)", errUsage, name, n)
		}
		return nil
	}

	switch name {
	case "version":
		return func(ctx context.Context) (any, error) { return client.GetVersion(ctx) }, wantArgs(0)
	case "server-time":
		return func(ctx context.Context) (any, error) { return client.GetServerTime(ctx) }, wantArgs(0)
	case "symbols":
		return func(ctx context.Context) (any, error) { return client.GetAllSymbols(ctx) }, wantArgs(0)
	case "user":
		return func(ctx context.Context) (any, error) { return client.GetCurrentUserData(ctx) }, wantArgs(0)
	case "margin-level":
		return func(ctx context.Context) (any, error) { return client.GetMarginLevel(ctx) }, wantArgs(0)
	case "calendar":
		return func(ctx context.Context) (any, error) { return client.GetCalendar(ctx) }, wantArgs(0)
	case "step-rules":
		return func(ctx context.Context) (any, error) { return client.GetStepRules(ctx) }, wantArgs(0)
	case "symbol":
		if err := wantArgs(1); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) { return client.GetSymbol(ctx, rest[0]) }, nil
	case "commission":
		if err := wantArgs(2); err != nil {
			return nil, err
		}
		volume, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: volume %q: %v", errUsage, rest[1], err)
		}
		return func(ctx context.Context) (any, error) { return client.GetCommissionDef(ctx, rest[0], volume) }, nil
	}
	return nil, fmt.Errorf("%w: unknown command %q", errUsage, name)
}
