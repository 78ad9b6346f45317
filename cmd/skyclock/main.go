package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"github.com/nnchaudhuri/skyclock/audio"
	"github.com/nnchaudhuri/skyclock/dial"
	"github.com/nnchaudhuri/skyclock/engine"
	"github.com/nnchaudhuri/skyclock/face"
	"github.com/nnchaudhuri/skyclock/location"
	"github.com/nnchaudhuri/skyclock/logging"
	"github.com/nnchaudhuri/skyclock/sky"
	"github.com/nnchaudhuri/skyclock/terminal"
	"github.com/nnchaudhuri/skyclock/theme"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	locationFlag  = flag.String("location", "", "Place name or \"lat,lng\" (default New York)")
	dateFlag      = flag.String("date", "", "Calendar day to display, YYYY-MM-DD (default today)")
	modeFlag      = flag.String("mode", "rotating", "Dial mode: rotating, fixed")
	themeFlag     = flag.String("theme", defaultThemePath(), "Theme file with the 12-color sequence")
	logFlag       = flag.String("log", defaultLogPath(), "Log file path")
	fpsFlag       = flag.Int("fps", 30, "Frames per second")
	chimeFlag     = flag.Bool("chime", false, "Strike a tone on the hour")
	debugFlag     = flag.Bool("debug", false, "Log at debug level")
)

func defaultThemePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "skyclock", "theme.yaml")
	}
	return "skyclock-theme.yaml"
}

func defaultLogPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "skyclock", "skyclock.log")
	}
	return "skyclock.log"
}

func main() {
	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSKYCLOCK CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logger := logging.New(*logFlag, *debugFlag)
	defer logger.Sync()

	var colorMode terminal.ColorMode
	switch *colorModeFlag {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}

	var dialMode dial.Mode
	if *modeFlag == "fixed" {
		dialMode = dial.ModeFixed
	}

	// Theme defects fall back to defaults; worth a log line, never fatal.
	// A missing file gets seeded with the defaults so the user has
	// something to edit
	seq, err := theme.Load(*themeFlag)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(*themeFlag), 0o755); err == nil {
			err = theme.Save(*themeFlag, seq)
		}
		if err != nil {
			logger.Warn("could not seed theme file", zap.Error(err))
		}
	} else if err != nil {
		logger.Info("using default colors", zap.Error(err))
	}

	resolver := location.NewResolver()

	// Startup resolution is synchronous; failures fall back to the
	// default place
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	place, err := resolver.Resolve(ctx, *locationFlag)
	cancel()
	if err != nil {
		logger.Warn("initial location fell back to default", zap.Error(err))
	}

	term := terminal.New(colorMode)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	state := engine.NewState(place, seq, dialMode)
	w, h := term.Size()

	var chime engine.Chimer
	if *chimeFlag {
		c := audio.NewChime()
		if err := c.Initialize(); err != nil {
			logger.Warn("chime disabled", zap.Error(err))
		} else {
			chime = c
			defer c.Close()
		}
	}

	eng := engine.New(engine.Config{
		Terminal: term,
		Face:     face.New(w, h),
		State:    state,
		Resolver: resolver,
		Logger:   logger,
		Chime:    chime,
		FPS:      *fpsFlag,
	})

	// Live theme reload while running
	if watcher, err := theme.Watch(*themeFlag, func(seq sky.ColorSequence) {
		logger.Info("theme reloaded")
		eng.SetSequence(seq)
	}); err == nil {
		defer watcher.Close()
	} else {
		logger.Debug("theme watch unavailable", zap.Error(err))
	}

	if *dateFlag != "" {
		if date, err := time.Parse("2006-01-02", *dateFlag); err == nil {
			eng.RefreshDate(date)
		} else {
			logger.Warn("ignoring malformed -date", zap.String("value", *dateFlag))
			eng.RefreshToday()
		}
	} else {
		eng.RefreshToday()
	}

	if err := eng.Run(); err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "skyclock: %v\n", err)
		os.Exit(1)
	}
}
