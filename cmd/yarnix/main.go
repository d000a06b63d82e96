// Package main is the entry point for the yarnix CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/yarnix/cmd/yarnix/commands"
	"go.trai.ch/yarnix/internal/app"
	"go.trai.ch/yarnix/internal/core/ports"
	_ "go.trai.ch/yarnix/internal/wiring"
)

// componentProvider resolves the application and its config loader.
type componentProvider func(context.Context) (*app.App, ports.ConfigLoader, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graftProvider))
}

func graftProvider(ctx context.Context) (*app.App, ports.ConfigLoader, error) {
	a, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		return nil, nil, err
	}
	loader, _, err := graft.ExecuteFor[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, nil, err
	}
	return a, loader, nil
}

func run(ctx context.Context, args []string, stderr io.Writer, provider componentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, loader, err := provider(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(a, loader)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with stack trace and metadata under %+v
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}
