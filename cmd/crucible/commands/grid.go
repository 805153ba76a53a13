package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/crucible/gridgraph"
)

// loadGrid reads the grid named by args[0], falling back to the configured
// path. "-" reads standard input.
func loadGrid(args []string, configured string, stdin io.Reader) (*gridgraph.CostGrid, string, error) {
	path := configured
	if len(args) > 0 {
		path = args[0]
	}
	switch path {
	case "":
		return nil, "", errors.New("no grid file given (argument or config 'grid')")
	case "-":
		g, err := gridgraph.ParseDigits(stdin)
		return g, "<stdin>", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.ParseDigits(f)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}

	return g, path, nil
}
