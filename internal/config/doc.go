// Package config loads and validates the YAML run configuration of the
// crucible CLI: which grid to read, which searches to run on it, and how
// to log and export metrics.
//
// A configuration looks like:
//
//	grid: ./input.txt
//	concurrency: 2
//	searches:
//	  - name: part1
//	    min_run: 0
//	    max_run: 3
//	  - name: part2
//	    min_run: 4
//	    max_run: 10
//	    path: true
//	logging:
//	  level: info
//	  format: console
//	metrics:
//	  file: ./crucible.prom
//
// Unknown keys are rejected. Without a file, Default provides the two
// classic searches above.
package config
