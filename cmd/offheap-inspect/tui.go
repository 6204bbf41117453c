package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/offheap/inspect"
	"github.com/wippyai/offheap/native"
	"github.com/wippyai/offheap/pressure"
	"github.com/wippyai/offheap/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type model struct {
	arr     *native.Array2D[int32]
	reg     *track.Registry
	mon     *pressure.Counting
	input   textinput.Model
	status  string
	cur0    int
	cur1    int
	editing bool
}

func newModel(a *native.Array2D[int32], reg *track.Registry, mon *pressure.Counting) model {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 11
	ti.Width = 12

	return model{arr: a, reg: reg, mon: mon, input: ti}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.cur0 > 0 {
			m.cur0--
		}
	case "right", "l":
		if m.cur0 < m.arr.Len0()-1 {
			m.cur0++
		}
	case "up", "k":
		if m.cur1 > 0 {
			m.cur1--
		}
	case "down", "j":
		if m.cur1 < m.arr.Len1()-1 {
			m.cur1++
		}
	case "enter", "e":
		if m.arr.Released() {
			m.status = errorStyle.Render("array is released")
			break
		}
		m.editing = true
		m.input.SetValue("")
		m.input.Focus()
	case "r":
		m.arr.Release()
		m.status = errorStyle.Render("array released; contents are gone")
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		v, err := strconv.ParseInt(m.input.Value(), 10, 32)
		if err != nil {
			m.status = errorStyle.Render("not an int32: " + m.input.Value())
		} else if err := m.arr.Set(m.cur0, m.cur1, int32(v)); err != nil {
			m.status = errorStyle.Render(err.Error())
		} else {
			m.status = statusStyle.Render(fmt.Sprintf("set (%d,%d) = %d", m.cur0, m.cur1, v))
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("offheap inspector"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(inspect.Summary(m.arr)))
	b.WriteString("\n\n")

	if m.arr.Released() {
		b.WriteString(errorStyle.Render("<released>"))
		b.WriteString("\n")
	} else {
		rows := m.arr.ToSlices()
		for i1, row := range rows {
			for i0, v := range row {
				cell := fmt.Sprintf(" %6d ", v)
				if i0 == m.cur0 && i1 == m.cur1 {
					b.WriteString(selectedStyle.Render(cell))
				} else {
					b.WriteString(cellStyle.Render(cell))
				}
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n%s\n",
		helpStyle.Render(fmt.Sprintf("tracked: %d arrays, %d bytes off-heap",
			m.reg.Len(), m.mon.InUse())))

	if m.editing {
		fmt.Fprintf(&b, "new value for (%d,%d): %s\n", m.cur0, m.cur1, m.input.View())
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("arrows/hjkl move · enter edit · r release · q quit"))
	b.WriteString("\n")

	return b.String()
}
