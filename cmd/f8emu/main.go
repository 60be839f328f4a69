// Command f8emu runs a Fairchild Channel F cartridge image against the
// F8 core, rendering it through a terminal, SDL2, or headless backend.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/channelf/f8emu/f8/backend"
	"github.com/channelf/f8emu/f8/cartridge"
	"github.com/channelf/f8emu/f8/console"
)

func main() {
	app := cli.NewApp()
	app.Name = "f8emu"
	app.Description = "A Fairchild Channel F (F8 3850) emulator"
	app.Usage = "f8emu [options] <cartridge file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "cartridge",
			Usage: "Path to the cartridge image",
		},
		cli.StringFlag{
			Name:  "bios-a",
			Usage: "Path to the BIOS-A ROM image (1KiB)",
		},
		cli.StringFlag{
			Name:  "bios-b",
			Usage: "Path to the BIOS-B ROM image (1KiB)",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Presentation backend: terminal, sdl2, headless",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("f8emu exited with error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cartPath := c.String("cartridge")
	if cartPath == "" {
		if c.NArg() > 0 {
			cartPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no cartridge path provided")
		}
	}

	cartData, err := os.ReadFile(cartPath)
	if err != nil {
		return fmt.Errorf("reading cartridge: %w", err)
	}
	cart := cartridge.New(cartData)

	biosA, err := readOptionalROM(c.String("bios-a"))
	if err != nil {
		return err
	}
	biosB, err := readOptionalROM(c.String("bios-b"))
	if err != nil {
		return err
	}

	h := newDesktopHost(44100)
	cons := console.NewWithROMs(h, biosA, biosB, cart)

	be, err := selectBackend(c.String("backend"))
	if err != nil {
		return err
	}

	title := fmt.Sprintf("f8emu - %s", cartPath)
	if err := be.Init(backend.Config{Title: title, Scale: 4}); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer be.Cleanup()

	if name := c.String("backend"); name == "headless" {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless backend requires --frames with a positive value")
		}
		return runHeadless(cons, h, be, frames)
	}

	return runInteractive(cons, h, be)
}

func readOptionalROM(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func selectBackend(name string) (backend.Backend, error) {
	switch name {
	case "terminal":
		return backend.NewTerminal(), nil
	case "sdl2":
		return backend.NewSDL2(), nil
	case "headless":
		return backend.NewHeadless(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func runHeadless(cons *console.Console, h *desktopHost, be backend.Backend, frames int) error {
	for i := 0; i < frames; i++ {
		cons.RunUntilFrame()
		if _, err := be.Update(h.frame); err != nil {
			return err
		}
		if i%60 == 0 {
			slog.Info("frame progress", "completed", i, "total", frames)
		}
	}
	slog.Info("headless run completed", "frames", frames, "instructions", cons.InstructionCount())
	return nil
}

func runInteractive(cons *console.Console, h *desktopHost, be backend.Backend) error {
	for {
		cons.RunUntilFrame()
		events, err := be.Update(h.frame)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if ev.Pressed && (ev.Key == "Quit" || ev.Key == "Escape") {
				return nil
			}
			if ev.Pressed {
				h.keys.Press(ev.Key)
			} else {
				h.keys.Release(ev.Key)
			}
		}
	}
}
