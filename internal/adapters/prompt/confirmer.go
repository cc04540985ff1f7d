package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/hailam/gerf/internal/ports"
)

var warn = color.New(color.FgRed, color.Bold).SprintFunc()

// TerminalConfirmer asks yes/no questions on a line based reader.
type TerminalConfirmer struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New returns a Confirmer reading answers from in and writing questions to
// out. If in is a file that is not a terminal every question is answered
// with no without reading.
func New(in io.Reader, out io.Writer) ports.Confirmer {
	interactive := true
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &TerminalConfirmer{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Confirm repeats the question until the answer is y/Y (yes) or empty, n or
// N (no). End of input counts as no.
func (c *TerminalConfirmer) Confirm(question string) (bool, error) {
	if !c.interactive {
		fmt.Fprintln(c.out, "Not asking for confirmation, input is not a terminal")
		return false, nil
	}

	for {
		fmt.Fprintf(c.out, "This could produce %s files!\n", warn("VERY LARGE"))
		fmt.Fprintln(c.out, question)

		line, err := c.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}

		switch strings.TrimSpace(line) {
		case "y", "Y":
			return true, nil
		case "", "n", "N":
			fmt.Fprintln(c.out, "Aborting")
			return false, nil
		}
		if err == io.EOF {
			fmt.Fprintln(c.out, "Aborting")
			return false, nil
		}
	}
}
