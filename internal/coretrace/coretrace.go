// Package coretrace is an interactive single-step debugger for the core.
// It loads raw bytes at a chosen address into a flat 64KB bus and steps
// cpu.Chip one instruction at a time, rendering registers, flags and a memory
// page as the program runs. It never parses a ROM header, never touches
// a PPU or mapper, and never reads input devices — all of that belongs
// to the NES front end this package deliberately stays out of.
package coretrace

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/nullroute-six502/core/bus"
	"github.com/nullroute-six502/core/cpu"
	"github.com/nullroute-six502/core/disassemble"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))
	haltStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// model is the tea.Model driving one debugging session.
type model struct {
	chip    *cpu.Chip
	mem     *bus.Flat
	program []byte
	origin  uint16
	prevPC  uint16
	err     error
	quit    bool
}

// Run loads program at origin into a fresh flat bus, points the reset
// vector at origin, and drives an interactive single-step session over
// it until the user quits. origin is where program is loaded; the reset
// vector is set to the same address so the core starts executing it
// immediately after power-on.
func Run(program []byte, origin uint16) error {
	mem := bus.NewFlat()
	mem.Load(origin, program)
	mem.WriteWord(cpu.ResetVector, origin)

	chip, err := cpu.New(cpu.Config{Bus: mem, IllegalPolicy: cpu.PolicyHalt})
	if err != nil {
		return err
	}

	m := model{
		chip:    chip,
		mem:     mem,
		program: program,
		origin:  origin,
		prevPC:  chip.PC,
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case " ", "j", "n":
		m.prevPC = m.chip.PC
		if err := m.stepInstruction(); err != nil {
			m.err = err
		}
	case "r":
		m.chip.Reset()
		m.prevPC = m.chip.PC
		m.err = nil
	}
	return m, nil
}

// stepInstruction ticks the chip until cycles_remaining returns to zero,
// i.e. through exactly one whole instruction (or interrupt service),
// rather than one raw clock pulse — the unit a person single-stepping
// actually wants to see.
func (m *model) stepInstruction() error {
	if err := m.chip.Tick(); err != nil {
		return err
	}
	for m.chip.CyclesRemaining() != 0 {
		if err := m.chip.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	snap := m.chip.Snapshot()
	left := borderStyle.Render(m.renderPage(snap.PC))
	right := borderStyle.Render(m.status())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	text, _ := disassemble.Step(snap.PC, m.mem)
	next := fmt.Sprintf("next: %s", text)
	if m.err != nil {
		next = haltStyle.Render(m.err.Error())
	}

	dump := borderStyle.Render(strings.TrimRight(spew.Sdump(snap), "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, top, next, dump,
		"space/j step, r reset, q quit")
}

// renderPage shows the 16-byte-wide page containing pc, with the byte at
// pc highlighted.
func (m model) renderPage(pc uint16) string {
	base := pc &^ 0x000F
	var b strings.Builder
	fmt.Fprintf(&b, "page $%04X\n", base)
	for row := uint16(0); row < 16; row++ {
		rowBase := base + row*16
		fmt.Fprintf(&b, "$%04X ", rowBase)
		for col := uint16(0); col < 16; col++ {
			addr := rowBase + col
			cell := fmt.Sprintf("%02X ", m.mem.Read(addr))
			if addr == pc {
				cell = cursorStyle.Render(strings.TrimRight(cell, " ")) + " "
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) status() string {
	snap := m.chip.Snapshot()
	flags := flagString(snap.P)
	return fmt.Sprintf(
		"PC $%04X (was $%04X)\nSP $%02X\nA  $%02X\nX  $%02X\nY  $%02X\nP  %s\ncycles %d",
		snap.PC, m.prevPC, snap.SP, snap.A, snap.X, snap.Y, flags, snap.TotalCycles)
}

func flagString(p uint8) string {
	letters := "NV-BDIZC"
	bits := []uint8{cpu.FlagN, cpu.FlagV, cpu.Flag5, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC}
	out := make([]byte, len(letters))
	for i, mask := range bits {
		if p&mask != 0 {
			out[i] = letters[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
