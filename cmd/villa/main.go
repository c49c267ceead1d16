package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"DreamVilla/internal/engine"
	"DreamVilla/internal/logger"
	"DreamVilla/scripts"

	"go.uber.org/zap"
)

func main() {
	scenePath := flag.String("scene", "assets/villa.yaml", "scene file (.yaml, .yml or .json)")
	frames := flag.Int("frames", 600, "frames to run, 0 runs until interrupted")
	frameRate := flag.Int("fps", engine.DefaultFrameRate, "frames per second")
	realtime := flag.Bool("realtime", false, "pace frames with the wall clock")
	watch := flag.Bool("watch", false, "reload the scene when its file changes")
	debug := flag.Bool("debug", false, "enable debug logging")
	clicks := flag.String("click", "", "comma separated clicks as name@frame, e.g. pad-pool@120")
	report := flag.Int("report", 60, "log floating objects every n frames, 0 disables")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	villa := engine.NewVilla(scripts.NewRegistry(), engine.Options{
		FrameRate: *frameRate,
		Realtime:  *realtime || *watch,
		Watch:     *watch,
	})
	if err := villa.LoadScene(*scenePath); err != nil {
		logger.Log.Fatal("Could not load scene", zap.String("path", *scenePath), zap.Error(err))
	}

	scheduled, err := parseClicks(*clicks)
	if err != nil {
		logger.Log.Fatal("Invalid -click value", zap.Error(err))
	}
	for _, c := range scheduled {
		villa.ScheduleClick(c.frame, c.name)
	}

	if *report > 0 {
		villa.SetOnFrameCallback(func(frame int, dt float32) {
			if frame%*report == 0 {
				reportFloating(villa, frame)
			}
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("DreamVilla running",
		zap.String("scene", *scenePath),
		zap.Int("frames", *frames),
		zap.Int("fps", *frameRate))

	if err := villa.Run(ctx, *frames); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Error("Run stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Log.Info("DreamVilla stopped", zap.Int("frames", villa.Frame()))
}

type click struct {
	name  string
	frame int
}

func parseClicks(value string) ([]click, error) {
	var out []click
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, frameStr, ok := strings.Cut(item, "@")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name@frame, got %q", item)
		}
		frame, err := strconv.Atoi(frameStr)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("bad frame in %q", item)
		}
		out = append(out, click{name: name, frame: frame})
	}
	return out, nil
}

func reportFloating(villa *engine.Villa, frame int) {
	for _, obj := range villa.Scene.Objects.GetAllGameObjects() {
		if obj.GetComponent(scripts.FloatingObjectName) == nil {
			continue
		}
		pos := obj.Transform.Position
		logger.Log.Info("Floating object",
			zap.Int("frame", frame),
			zap.String("object", obj.Name),
			zap.Float32("x", pos.X()),
			zap.Float32("y", pos.Y()),
			zap.Float32("z", pos.Z()))
	}
}
