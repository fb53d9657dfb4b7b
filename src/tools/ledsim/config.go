// Package ledsim runs the real entry trampoline and halt handlers on a
// workstation, with the board's lamps drawn in the terminal.  It is how the
// patterns get checked without flashing a card.
package ledsim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LampConfig describes one simulated lamp.  Pin is the board line it stands
// for (a GPIO, or 130 and up for the firmware expander); it shows in traces.
// 0 leaves it unassigned.
type LampConfig struct {
	Name      string `yaml:"name"`
	Pin       int    `yaml:"pin"`
	ActiveLow bool   `yaml:"active_low"`
}

// Board is the simulated board.  Speed scales real time: 1 shows the
// patterns at their true pace, 10 runs them ten times faster.  The halt
// handlers always ask for the same hold; only the simulator's clock is
// scaled.
type Board struct {
	Name  string       `yaml:"name"`
	Lamps []LampConfig `yaml:"lamps"`
	Speed float64      `yaml:"speed"`
}

var ErrInvalidBoard = errors.New("invalid board")

// DefaultBoard is a pi3B: activity and power lamps on the firmware expander.
func DefaultBoard() *Board {
	return &Board{
		Name: "rpi3",
		Lamps: []LampConfig{
			{Name: "act", Pin: 130},
			{Name: "pwr", Pin: 131, ActiveLow: true},
		},
		Speed: 1,
	}
}

// LoadBoard reads a board description from a YAML file.  Fields left out
// keep their DefaultBoard values, except lamps: a file that lists no lamps
// describes a board with none.
func LoadBoard(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return ParseBoard(data)
}

func ParseBoard(data []byte) (*Board, error) {
	b := DefaultBoard()
	b.Lamps = nil
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parsing board file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Validate() error {
	if b.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidBoard, b.Speed)
	}
	seen := map[string]bool{}
	pins := map[int]string{}
	for i, l := range b.Lamps {
		if l.Name == "" {
			return fmt.Errorf("%w: lamp %d has no name", ErrInvalidBoard, i)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: lamp %q listed twice", ErrInvalidBoard, l.Name)
		}
		seen[l.Name] = true
		if l.Pin < 0 {
			return fmt.Errorf("%w: lamp %q has negative pin %d", ErrInvalidBoard, l.Name, l.Pin)
		}
		if other, ok := pins[l.Pin]; ok && l.Pin != 0 {
			return fmt.Errorf("%w: lamps %q and %q share pin %d", ErrInvalidBoard, other, l.Name, l.Pin)
		}
		pins[l.Pin] = l.Name
	}
	return nil
}
