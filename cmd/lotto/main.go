package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	lottocmd "github.com/louisbranch/minigames/internal/cmd/lotto"
	"github.com/louisbranch/minigames/internal/platform/config"
)

func main() {
	cfg, err := lottocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitWithCode(config.ExitUsage, "parse config: %v", err)
	}
	log.SetPrefix("[LOTTO] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lottocmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("[ERROR] %v", err)
	}
}
