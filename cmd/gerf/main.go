package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

// interruptSignals are the signals handled as Ctrl-C.
var interruptSignals = []os.Signal{os.Interrupt}

func main() {
	// Handle Ctrl+C
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, interruptSignals...)
	go onInterrupt(sigs, os.Stdout, os.Exit)

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// onInterrupt waits for the first signal on sigs, reports it and exits 0.
func onInterrupt(sigs <-chan os.Signal, out io.Writer, exit func(int)) {
	<-sigs
	fmt.Fprintln(out, color.New(color.Italic).Sprint("Received Ctrl-C!"))
	exit(0)
}
