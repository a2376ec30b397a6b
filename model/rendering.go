package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	aliveMarker = "*"
	deadMarker  = " "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer that writes to stdout.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid, one line per row: a marker per live cell, a
// blank per dead cell, with the row index appended at the end of the line.
func (r *TerminalRenderer) Display(g *Grid) {
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.IsAlive(x, y) {
				fmt.Fprint(r.Out, aliveMarker)
			} else {
				fmt.Fprint(r.Out, deadMarker)
			}
		}
		fmt.Fprintf(r.Out, " %d\n", y)
	}
}

// Clear clears the terminal screen between frames.
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
