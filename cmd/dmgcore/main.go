// Command dmgcore runs a program on a single machine for a number of
// instructions and prints the resulting registers and state digest.
//
//	dmgcore -program hello.gb.zst -pc 0x0100 -steps 5000 -trace
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	profile := flag.String("profile", "", "A YAML machine profile to load")
	flag.String("program", "", "The program file to load, optionally compressed")
	state := flag.String("state", "", "A snapshot to restore instead of bootstrapping")
	flag.Int("steps", 0, "The number of instructions to execute")
	flag.String("sp", "", "The initial stack pointer")
	flag.String("pc", "", "The initial program counter")
	flag.String("byte-order", "", "The byte order of 16-bit values, big or little")
	flag.Bool("trace", false, "Log every executed instruction")
	stats := flag.Bool("stats", false, "Serve runtime statistics at "+statsAddress+statsURL)
	flag.Parse()

	var logger = log.New()

	cfg := gameboy.DefaultConfig()
	if *profile != "" {
		var err error
		if cfg, err = gameboy.LoadConfig(*profile); err != nil {
			logger.Fatalf("loading profile: %v", err)
		}
	}

	// flags override the profile
	set := make(map[string]string)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	cfg, err := applyFlags(cfg, set)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	if cfg.Trace {
		logger = log.NewDebug()
	}
	opts = append(opts, gameboy.WithLogger(logger))

	if cfg.Program != "" {
		data, err := utils.LoadFile(cfg.Program)
		if err != nil {
			logger.Fatalf("loading program: %v", err)
		}
		opts = append(opts, gameboy.WithBootstrap(data))
	}
	if *state != "" {
		data, err := utils.LoadFile(*state)
		if err != nil {
			logger.Fatalf("loading state: %v", err)
		}
		opts = append(opts, gameboy.WithState(data))
	}

	if *stats {
		launchStats(os.Stderr)
	}

	gb, err := gameboy.NewGameBoy(opts...)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	n, err := gb.Run(cfg.Steps)
	fmt.Printf("%s\nSP: %04X PC: %04X\n", gb.CPU.Registers.String(), gb.CPU.Stack.Pointer(), gb.CPU.PC.Counter())
	fmt.Printf("executed %d instructions in %d cycles\n", n, gb.Cycles())
	fmt.Printf("digest: %016x\n", gb.Digest())
	if err != nil {
		logger.Fatalf("%v", err)
	}
}
