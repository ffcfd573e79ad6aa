package main

import (
	"context"
	"os"
	"os/signal"

	"imageresize/internal/cli"
	"imageresize/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, config.Load(), os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
