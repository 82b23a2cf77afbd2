// Command yserver runs the window server on a video driver.
//
// With the memory driver it composites a fixed number of frames and can
// write the last one to a PNG file:
//
//	yserver -driver memory -frames 10 -snapshot desktop.png
//
// With the terminal driver it runs until Ctrl+C, Escape or q; Tab cycles
// the windows.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/bufferio"
	"github.com/gogpu/ywin/desktop"
	"github.com/gogpu/ywin/driver"
	"github.com/gogpu/ywin/driver/memory"
	"github.com/gogpu/ywin/driver/term"
	"github.com/gogpu/ywin/internal/config"
	"github.com/gogpu/ywin/render"
	"github.com/gogpu/ywin/text"

	_ "github.com/gogpu/ywin/driver/fbdev"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "yserver:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "yserver:", err)
		os.Exit(1)
	}
}

// parseFlags loads the configuration file and applies the flags that were
// set on top of it.
func parseFlags(args []string, output io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("yserver", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		path     = fs.String("config", config.DefaultPath(), "configuration file")
		drv      = fs.String("driver", "", "video driver (empty selects the best available)")
		mode     = fs.String("mode", "", "renderer mode: software, simple or hardware")
		width    = fs.Int("width", 0, "screen width for drivers without a display")
		height   = fs.Int("height", 0, "screen height for drivers without a display")
		snapshot = fs.String("snapshot", "", "write the last frame to this PNG file")
		frames   = fs.Int("frames", -1, "number of frames to composite (0 runs until quit)")
		level    = fs.String("log-level", "", "log level: debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}

	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Driver = *drv
		case "mode":
			m, err := render.ParseMode(*mode)
			if err != nil {
				ferr = err
				return
			}
			cfg.Mode = m
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "snapshot":
			cfg.Snapshot = *snapshot
		case "frames":
			cfg.Frames = *frames
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	if ferr != nil {
		return nil, ferr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	ywin.SetLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))
	log := ywin.Logger()

	d, err := openDriver(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Warn("yserver: close driver", "driver", d.Name(), "err", err)
		}
	}()
	w, h := d.PixelDimensions()
	log.Info("yserver: driver opened", "driver", d.Name(), "width", w, "height", h, "mode", cfg.Mode)

	face, err := loadFace(cfg)
	if err != nil {
		return err
	}
	screen := newScreen(d, cfg, face)
	screen.Do(func(dt *desktop.Desktop) {
		addDemoWindows(dt, face, cfg.Image)
	})

	switch drv := d.(type) {
	case *term.Driver:
		return runTerminal(ctx, screen, drv, cfg)
	case *memory.Driver:
		frames := cfg.Frames
		if frames == 0 {
			frames = 1
		}
		if err := runFrames(ctx, screen, frames, 0); err != nil {
			return err
		}
		return snapshot(drv, cfg.Snapshot)
	default:
		return runFrames(ctx, screen, cfg.Frames, cfg.FrameInterval.D())
	}
}

func openDriver(cfg *config.Config) (driver.Driver, error) {
	opts := driver.DefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	opts.Mode = cfg.Mode
	opts.HardwarePointer = cfg.HardwarePointer
	var d driver.Driver
	var err error
	ywin.Logger().Debug("yserver: drivers", "registered", driver.Names(false), "available", driver.Names(true))
	if cfg.Driver == "" {
		d, err = driver.OpenBest(opts)
	} else {
		d, err = driver.Open(cfg.Driver, opts)
	}
	if err != nil {
		return nil, err
	}
	if opts.HardwarePointer && !driver.HardwarePointer(opts, d) {
		ywin.Logger().Warn("yserver: driver cannot draw the pointer, using software pointer", "driver", d.Name())
	}
	return d, nil
}

func loadFace(cfg *config.Config) (*text.Face, error) {
	if cfg.Font == "" {
		return text.DefaultFace(cfg.FontSize), nil
	}
	return text.LoadFace(cfg.Font, cfg.FontSize)
}

func newScreen(d driver.Driver, cfg *config.Config, face *text.Face) *desktop.Screen {
	version := desktop.NewVersionText(face, "ywin "+ywin.Version)
	opts := []desktop.ScreenOption{
		desktop.WithDesktopOptions(
			desktop.WithBackground(cfg.Background.ARGB()),
			desktop.WithVersionText(version),
		),
	}
	if !cfg.Pointer {
		opts = append(opts, desktop.WithoutPointer())
	}
	return desktop.NewScreen(d, opts...)
}

// runFrames composites frames updates, sweeping the pointer across the
// screen. Zero frames runs until ctx is done.
func runFrames(ctx context.Context, s *desktop.Screen, frames int, interval time.Duration) error {
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}
	w, h := s.Desktop().Size()
	for i := 0; frames == 0 || i < frames; i++ {
		if i > 0 {
			s.MovePointer((i*7)%max(w, 1), (i*5)%max(h, 1))
		}
		s.Update()
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
	return nil
}

func runTerminal(ctx context.Context, s *desktop.Screen, d *term.Driver, cfg *config.Config) error {
	interval := cfg.FrameInterval.D()
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	events := d.Events()
	s.Update()
	for frame := 1; cfg.Frames == 0 || frame < cfg.Frames; {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handleEvent(s, d, ev) {
				return nil
			}
		case <-t.C:
			if s.Update() {
				frame++
			}
		}
	}
	return nil
}

// handleEvent applies one terminal event and reports whether the loop
// should continue.
func handleEvent(s *desktop.Screen, d *term.Driver, ev term.Event) bool {
	switch ev.Kind {
	case term.EventQuit:
		return false
	case term.EventResize:
		w, h := d.Resize()
		s.Resize(w, h)
	case term.EventKey:
		if ev.Key == tcell.KeyTab {
			s.Do(func(dt *desktop.Desktop) { dt.Cycle(1) })
		}
	}
	return true
}

func snapshot(d *memory.Driver, path string) error {
	if path == "" {
		return nil
	}
	if err := bufferio.SavePNG(d.Framebuffer(), path); err != nil {
		return err
	}
	ywin.Logger().Info("yserver: snapshot written", "path", path, "frames", d.Frames())
	return nil
}
