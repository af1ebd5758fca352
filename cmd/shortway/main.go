// Command shortway plans routes across waypoint scenes.
//
// It supports four commands:
//  1. "route" – plan once and print the route (text or JSON)
//  2. "watch" – re-plan every time the scene file changes
//  3. "serve" – expose the route, a traveler and an event stream over HTTP/websocket
//  4. "fmt"   – print (or rewrite) a scene file in canonical form
//
// Global flags pick the scene file, override its thresholds and set the log
// level; each can also come from a SHORTWAY_* environment variable or a .env
// file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "shortway"
)

// main loads .env, runs the command line and maps failures to exit code 1.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).command().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		stop()
		os.Exit(1)
	}
}
