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
	"github.com/relabs-tech/marker_tracker/internal/calib"
	"github.com/relabs-tech/marker_tracker/internal/config"
	"github.com/relabs-tech/marker_tracker/internal/logging"
)

// producer publishes synthetic poses through the full tracker pipeline,
// for exercising the MQTT subscribers without a camera.
func main() {
	configPath := flag.String("config", "./tracker_config.txt", "path to configuration file")
	flag.Parse()

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Get()
	defer logging.Setup(cfg.LogFile).Close()

	log.Println("starting marker tracker MQTT producer (mock)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	intr := calib.Synthetic(cfg.CameraWidth, cfg.CameraHeight)
	src := app.NewMockFrameSource(intr, cfg.MarkerSize, cfg.MarkerID, cfg.MockFrames)
	if err := app.RunTracker(ctx, src, intr); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
