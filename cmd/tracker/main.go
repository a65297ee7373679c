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
	"github.com/relabs-tech/marker_tracker/internal/vision"
)

func main() {
	configPath := flag.String("config", "./tracker_config.txt", "path to configuration file")
	flag.Parse()

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Get()
	defer logging.Setup(cfg.LogFile).Close()

	log.Println("starting marker tracker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	intr, err := app.LoadIntrinsics(cfg)
	if err != nil {
		log.Fatalf("failed to load calibration: %v", err)
	}

	var src app.FrameSource
	if cfg.UseMockSource {
		log.Println("tracker: using mock marker source")
		src = app.NewMockFrameSource(intr, cfg.MarkerSize, cfg.MarkerID, cfg.MockFrames)
	} else {
		cam, err := vision.OpenCamera(vision.CameraOptions{
			Device:      cfg.CameraDevice,
			Width:       cfg.CameraWidth,
			Height:      cfg.CameraHeight,
			FPS:         cfg.CameraFPS,
			Dictionary:  cfg.ArucoDict,
			ShowPreview: cfg.ShowPreview,
			Intrinsics:  intr,
			MarkerSize:  cfg.MarkerSize,
		})
		if err != nil {
			log.Fatalf("failed to open camera: %v", err)
		}
		src = cam
	}

	if err := app.RunTracker(ctx, src, intr); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
