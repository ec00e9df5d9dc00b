// Command c64core assembles a machine from ROM images and an optional
// cartridge or tape image, then hands it to the interactive raw-keyboard
// control surface in internal/cli.
//
// Grounded on gopher2600.go's own top-level wiring shape (build every
// component, attach it, hand the assembled machine to the UI layer);
// unlike gopher2600.go's multi-mode modalflag.Modes, this binary has one
// mode and a handful of flags, so it uses stdlib flag directly, the way
// modalflag itself is built on flag.FlagSet underneath.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/cli"
	"github.com/TimothyRLaMora734/virtualc64/internal/config"
	"github.com/TimothyRLaMora734/virtualc64/internal/container"
	"github.com/TimothyRLaMora734/virtualc64/internal/rom"
	"github.com/TimothyRLaMora734/virtualc64/internal/system"
)

func main() {
	var (
		basicPath  = flag.String("basic", "", "path to the 8K BASIC ROM image")
		charPath   = flag.String("char", "", "path to the 4K character ROM image")
		kernalPath = flag.String("kernal", "", "path to the 8K KERNAL ROM image")
		crtPath    = flag.String("crt", "", "optional path to a CRT cartridge image")
		t64Path    = flag.String("t64", "", "optional path to a T64 tape image")
		ntsc       = flag.Bool("ntsc", false, "use NTSC timing instead of PAL")
	)
	flag.Parse()

	if err := run(*basicPath, *charPath, *kernalPath, *crtPath, *t64Path, *ntsc); err != nil {
		fmt.Fprintln(os.Stderr, "c64core:", err)
		os.Exit(1)
	}
}

func run(basicPath, charPath, kernalPath, crtPath, t64Path string, ntsc bool) error {
	if basicPath == "" || charPath == "" || kernalPath == "" {
		return fmt.Errorf("-basic, -char, and -kernal are all required")
	}

	basicImg, err := loadROM(basicPath, rom.LoadBasic)
	if err != nil {
		return err
	}
	charImg, err := loadROM(charPath, rom.LoadCharacter)
	if err != nil {
		return err
	}
	kernalImg, err := loadROM(kernalPath, rom.LoadKernal)
	if err != nil {
		return err
	}

	prefs := config.NewPreferences()
	if ntsc {
		prefs.Model = config.NTSC
	}

	sys := system.New(prefs)
	sys.LoadROMs(basicImg.Data, charImg.Data, kernalImg.Data)

	if crtPath != "" {
		f, err := os.Open(crtPath)
		if err != nil {
			return err
		}
		defer f.Close()

		crt, err := container.ParseCRT(f)
		if err != nil {
			return err
		}
		cart, err := cartridge.New(crt.Kind, crt.GameLine, crt.ExromLine, crt.Chips)
		if err != nil {
			return err
		}
		sys.AttachCartridge(cart)
	}

	sys.Reset()

	c := cli.New(sys, os.Stdout)

	if t64Path != "" {
		f, err := os.Open(t64Path)
		if err != nil {
			return err
		}
		defer f.Close()

		tape, err := container.ParseT64(f)
		if err != nil {
			return err
		}
		c.InsertTape(tape)
	}

	if err := c.Start(); err != nil {
		return err
	}
	defer c.Stop()

	fmt.Fprintln(os.Stdout, "c64core ready: r=run h=halt s=step i=step-instruction o=step-over q=quit")
	<-c.Done()
	return nil
}

func loadROM(path string, load func(r io.Reader) (rom.Image, error)) (rom.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return rom.Image{}, err
	}
	defer f.Close()
	return load(f)
}
