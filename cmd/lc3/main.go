// lc3 emulator.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ezrec/lc3/emulator"
	"github.com/ezrec/lc3/io"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"Run one or more LC-3 program images."`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Trace  bool     `help:"Trace each instruction to stderr."`
	Images []string `arg:"" optional:"" type:"existingfile" help:"Program image files."`
}

func (r *runCmd) Run() error {
	if len(r.Images) == 0 {
		fmt.Fprintln(os.Stderr, "lc3 [--trace] image-file1 [image-file2] ...")
		os.Exit(2)
	}

	console, err := io.OpenTerminal()
	if err != nil {
		return err
	}
	defer console.Restore()

	emu := emulator.NewEmulator(console)
	emu.Verbose = r.Trace

	for _, image := range r.Images {
		if err := emu.LoadImage(image); err != nil {
			console.Restore()
			fmt.Fprintf(os.Stderr, "lc3: %v: %v\n", image, err)
			os.Exit(1)
		}
	}

	// Put the terminal back even when the run is cut short.
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		console.Restore()
		os.Exit(130)
	}()

	emu.Reset()
	err = emu.Run()
	console.Restore()
	return err
}
