package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Dicklesworthstone/turtle_troubles/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args, version, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
