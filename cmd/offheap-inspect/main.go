// Command offheap-inspect is an interactive demo of the offheap library.
// It allocates a tracked array and opens a TUI to inspect and edit its
// contents; when stdout is not a terminal it prints a plain dump instead.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wippyai/offheap/inspect"
	"github.com/wippyai/offheap/native"
	"github.com/wippyai/offheap/pressure"
	"github.com/wippyai/offheap/track"
)

func main() {
	reg := track.NewRegistry()
	mon := pressure.NewCounting()

	a, err := native.New[int32](6, 8,
		native.WithTracker(reg, "demo-grid"),
		native.WithPressure(mon),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "allocate:", err)
		os.Exit(1)
	}
	defer a.Release()

	// Seed something recognizable: each cell holds its flatten index.
	view := a.View()
	for k := range view {
		view[k] = int32(k)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(inspect.Render(a))
		fmt.Printf("tracked arrays: %d, off-heap bytes: %d\n", reg.Len(), mon.InUse())
		return
	}

	p := tea.NewProgram(newModel(a, reg, mon), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
