// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/relabs-tech/marker_tracker/internal/app"
	"github.com/relabs-tech/marker_tracker/internal/config"
	"github.com/relabs-tech/marker_tracker/internal/logging"
)

func main() {
	configPath := flag.String("config", "./tracker_config.txt", "path to configuration file")
	flag.Parse()

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defer logging.Setup(config.Get().LogFile).Close()

	log.Println("starting servo test sequence")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunServo(ctx); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
