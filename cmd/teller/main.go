package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/caixadev/teller/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := bootstrap.LoadConfig()

	app, err := bootstrap.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize teller: %v", err)
	}

	if err := app.Console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Teller stopped: %v", err)
	}
}
