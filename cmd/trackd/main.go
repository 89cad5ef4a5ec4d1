// Command trackd serves the track catalog and the route planner over HTTP.
//
// Usage:
//
//	trackd [-config trackd.toml] [-addr :8000] [-tracks tracks.json] [-origins a,b] [-max-flags 16]
//	trackd -solve <track-id> [-tracks tracks.json] [-max-flags 16]
//
// Settings are layered: built-in defaults, then the TOML file named by
// -config (or TRACKRUN_CONFIG), then TRACKRUN_ADDR, TRACKRUN_TRACKS,
// TRACKRUN_ORIGINS and TRACKRUN_MAX_FLAGS, then explicit flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/trackrun/planner"
	"github.com/katalvlaran/trackrun/server"
	"github.com/katalvlaran/trackrun/tracks"
)

const (
	exitOK     = 0
	exitUsage  = 2
	exitFailed = 1
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// invocation is the parsed command line.
type invocation struct {
	cfg   server.Config
	solve string
}

// parseArgs layers settings: defaults, then the -config TOML file, then
// TRACKRUN_* variables, then explicit flags.
func parseArgs(args []string, stderr io.Writer) (invocation, error) {
	fs := flag.NewFlagSet("trackd", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		config   = fs.String("config", os.Getenv("TRACKRUN_CONFIG"), "optional TOML settings file")
		addr     = fs.String("addr", "", "listen address (default :8000)")
		path     = fs.String("tracks", "", "track catalog, .json, .yaml or .yml (default tracks.json)")
		origins  = fs.String("origins", "", "comma-separated CORS origins")
		maxFlags = fs.String("max-flags", "", "maximum flags per solve (default 16)")
		solve    = fs.String("solve", "", "print the moves for a catalog track and exit")
	)
	if err := fs.Parse(args); err != nil {
		return invocation{}, err
	}

	cfg := server.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = server.LoadConfig(*config, cfg); err != nil {
			return invocation{}, err
		}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name, env string, v *string) (string, bool) {
		if set[name] {
			return *v, true
		}
		if e, ok := os.LookupEnv(env); ok && e != "" {
			return e, true
		}
		return "", false
	}

	if v, ok := pick("addr", "TRACKRUN_ADDR", addr); ok {
		cfg.Addr = v
	}
	if v, ok := pick("tracks", "TRACKRUN_TRACKS", path); ok {
		cfg.TracksPath = v
	}
	if v, ok := pick("origins", "TRACKRUN_ORIGINS", origins); ok {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := pick("max-flags", "TRACKRUN_MAX_FLAGS", maxFlags); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invocation{}, fmt.Errorf("trackd: -max-flags: %w", err)
		}
		cfg.MaxFlags = n
	}
	if err := cfg.Validate(); err != nil {
		return invocation{}, err
	}

	return invocation{cfg: cfg, solve: *solve}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "[trackd] ", log.LstdFlags)

	inv, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	catalog, err := tracks.LoadFile(inv.cfg.TracksPath)
	if err != nil {
		logger.Printf("load catalog: %v", err)
		return exitFailed
	}

	if inv.solve != "" {
		t, ok := catalog.Get(inv.solve)
		if !ok {
			logger.Printf("no track %q in %s", inv.solve, inv.cfg.TracksPath)
			return exitFailed
		}
		res, err := planner.PlanChecked(t.Grid, inv.cfg.MaxFlags)
		if err != nil {
			logger.Printf("solve %s: %v", t.ID, err)
			return exitFailed
		}
		fmt.Fprintln(stdout, strings.Join(res.MoveNames(), " "))
		return exitOK
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.New(inv.cfg, catalog, logger).ListenAndServe(ctx); err != nil {
		logger.Printf("serve: %v", err)
		return exitFailed
	}

	return exitOK
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
