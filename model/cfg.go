package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Layout files describe a grid as Size lines of Size characters, top line
// first (row Size-1, same orientation the renderer uses):
//
//	'X'         obstacle
//	'.' or ' '  free cell
//	'S' / 'D'   optional start / destination markers on the fixed corners
//
// See data/phase_one.txt.

// Load reads a layout file from disk.
func Load(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read parses a layout from reader.
func Read(reader io.Reader) (*Grid, error) {
	g := NewGrid()
	scanner := bufio.NewScanner(reader)
	row := Size - 1

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if row < 0 {
			return nil, fmt.Errorf("layout has more than %d rows", Size)
		}
		if len(line) != Size {
			return nil, fmt.Errorf("layout row %d has %d cells, want %d", row, len(line), Size)
		}
		for col, char := range line {
			cell := Cell{Row: row, Col: col}
			switch char {
			case glyphObstacle:
				if err := g.Block(cell); err != nil {
					return nil, fmt.Errorf("layout cell %d,%d: %w", cell.Row, cell.Col, err)
				}
			case '.', glyphFree:
			case 'S':
				if cell != Start {
					return nil, fmt.Errorf("start marker at %d,%d, want %d,%d", cell.Row, cell.Col, Start.Row, Start.Col)
				}
			case 'D':
				if cell != Target {
					return nil, fmt.Errorf("destination marker at %d,%d, want %d,%d", cell.Row, cell.Col, Target.Row, Target.Col)
				}
			default:
				return nil, fmt.Errorf("layout cell %d,%d: unknown symbol %q", cell.Row, cell.Col, char)
			}
		}
		row--
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row >= 0 {
		return nil, fmt.Errorf("layout has %d rows, want %d", Size-1-row, Size)
	}
	return g, nil
}
