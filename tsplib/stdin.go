package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsproute/tsp"
)

// ReadStdinMatrix implements the plain stdin fallback grammar: line 1 is N,
// then N lines each holding K whitespace-separated reals. Row r (0-indexed)
// becomes a point with id=r, per spec.md §6. Only the first two coordinates
// of each row are kept — this solver is 2-D Euclidean only.
func ReadStdinMatrix(r io.Reader) ([]tsp.Point, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing point count", ErrParse)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid point count", ErrParse)
	}

	points := make([]tsp.Point, 0, n)
	for row := 0; row < n; row++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrParse, n, row)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: row %d has fewer than 2 coordinates", ErrParse, row)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrParse, row, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrParse, row, err)
		}
		points = append(points, tsp.NewPoint(row, x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return points, nil
}
