package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a grid written as one ASCII digit per cell and one row
// per line, e.g. the heat-loss maps of the crucible puzzle:
//
//	2413
//	3215
//
// Trailing carriage returns and blank trailing lines are ignored. Any other
// byte, or a row of differing length, yields ErrMalformedGrid.
func ParseDigits(r io.Reader) (*CostGrid, error) {
	var rows [][]int
	blank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrMalformedGrid, line)
		}
		row := make([]int, len(text))
		for col := 0; col < len(text); col++ {
			b := text[col]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrMalformedGrid, line, col+1, b)
			}
			row[col] = int(b - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return NewCostGrid(rows)
}

// ParseDigitsString is ParseDigits over an in-memory string.
func ParseDigitsString(s string) (*CostGrid, error) {
	return ParseDigits(strings.NewReader(s))
}
