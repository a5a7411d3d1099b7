package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	guesscmd "github.com/louisbranch/numberguess/internal/cmd/guess"
	apperrors "github.com/louisbranch/numberguess/internal/platform/errors"
	"github.com/louisbranch/numberguess/internal/platform/config"
)

func main() {
	cfg, err := guesscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[GUESS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := guesscmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		config.Exitf("\n%s", apperrors.UserMessage(err, cfg.Locale))
	}
}
