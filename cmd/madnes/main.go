// Command madnes runs a NES ROM, the way the teacher's gintendo
// command loads a ROM, resolves its mapper, and hands the result to
// ebiten (§6).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/madnes/madnes/internal/console"
	"github.com/madnes/madnes/internal/ines"
	"github.com/madnes/madnes/internal/mappers"
	"github.com/madnes/madnes/internal/ppu"
)

var (
	romPath = flag.String("rom", "", "path to an iNES ROM file")
	debug   = flag.String("debug", "", "write a per-instruction register trace to this file")
)

func main() {
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "madnes: -rom is required")
		os.Exit(1)
	}

	rom, err := ines.Load(*romPath)
	if err != nil {
		log.Printf("invalid ROM: %v", err)
		os.Exit(1)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Printf("unsupported cartridge: %v", err)
		os.Exit(1)
	}

	c := console.New(m)

	if *debug != "" {
		f, err := os.Create(*debug)
		if err != nil {
			log.Printf("couldn't open trace file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		c.EnableTrace(f)
	}

	ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
	ebiten.SetWindowTitle("madnes")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(c); err != nil {
		log.Printf("emulation stopped: %v", err)
		os.Exit(1)
	}

	os.Exit(0)
}
