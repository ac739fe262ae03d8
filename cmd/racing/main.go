package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	racingcmd "github.com/louisbranch/minigames/internal/cmd/racing"
	"github.com/louisbranch/minigames/internal/platform/config"
)

func main() {
	cfg, err := racingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitWithCode(config.ExitUsage, "parse config: %v", err)
	}
	log.SetPrefix("[RACING] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := racingcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("[ERROR] %v", err)
	}
}
