// Package puzzle loads puzzle fixtures from disk for the fdsolve CLI and
// builds the finite-domain models that solve them.
package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/finitedomain/pkg/fd"
)

// SudokuBoard is a 9x9 grid read from a YAML fixture, 0 marking a blank
// cell. The YAML shape is a single top-level "board" key holding 9 rows
// of 9 ints, matching the teacher's examples' plain numeric-literal board
// convention rather than a nested object format.
type SudokuBoard struct {
	Board [9][9]int `yaml:"board"`
}

// LoadSudoku reads and parses a sudoku fixture file.
func LoadSudoku(path string) (*SudokuBoard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: reading %s: %w", path, err)
	}
	var board SudokuBoard
	if err := yaml.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("puzzle: parsing %s: %w", path, err)
	}
	return &board, nil
}

// BuildSudokuModel builds the standard sudoku model: 81 variables over
// 1..9, row/column/block AllDifferent, givens pinned with Set.
func BuildSudokuModel(board *SudokuBoard) (*fd.Model[int], [9][9]fd.VarID) {
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m := fd.NewModel(fd.NewOrderedVariable[int])

	var grid [9][9]fd.VarID
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			grid[r][c] = m.CreateVar(digits)
		}
	}

	for r := 0; r < 9; r++ {
		row := make([]fd.VarID, 9)
		copy(row, grid[r][:])
		fd.AllDifferentOn(m, row...)
	}
	for c := 0; c < 9; c++ {
		col := make([]fd.VarID, 9)
		for r := 0; r < 9; r++ {
			col[r] = grid[r][c]
		}
		fd.AllDifferentOn(m, col...)
	}
	for _, br := range []int{0, 3, 6} {
		for _, bc := range []int{0, 3, 6} {
			block := make([]fd.VarID, 0, 9)
			for n := 0; n < 9; n++ {
				block = append(block, grid[br+n/3][bc+n%3])
			}
			fd.AllDifferentOn(m, block...)
		}
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if board.Board[r][c] != 0 {
				m.Set(grid[r][c], board.Board[r][c])
			}
		}
	}

	return m, grid
}
