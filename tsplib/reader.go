// Package tsplib reads a small subset of the TSPLIB instance format plus a
// plain stdin fallback, producing tsp.Point values. This is an external
// collaborator to the tsp package: a narrow producer, never imported back by
// tsp itself.
//
// Grounded on the original reference's line-oriented, regex-matched state
// machine (tsplib.rs: START/INCOORD/OUTCOORD/END), reworked here as a
// bufio.Scanner loop with explicit state — no ecosystem parser in the
// retrieval pack fits a flat key-value/coordinate grammar better than the
// standard library's line scanner, so this file stays on stdlib by design.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsproute/tsp"
)

// readerState mirrors the original reference's TspReaderStates enum.
type readerState int

const (
	stateHeader readerState = iota
	stateInCoord
	stateUnknownSection
	stateDone
)

const (
	nodeCoordSection    = "NODE_COORD_SECTION"
	displayDataSection  = "DISPLAY_DATA_SECTION"
	eofMarker           = "EOF"
)

// Instance is the reader's output record: header metadata plus the parsed
// points, handed to the core as a plain []tsp.Point via its Points field.
type Instance struct {
	Name    string
	Comment string
	Points  []tsp.Point
}

// ReadFile reads a TSPLIB-subset file at path. Any malformed line is a fatal
// reader-level error wrapping ErrParse — the core never sees a partially
// built Instance.
func ReadFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	inst := Instance{}
	state := stateHeader

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		switch upper {
		case nodeCoordSection, displayDataSection:
			state = stateInCoord
			continue
		case eofMarker:
			state = stateDone
		}

		if state == stateDone {
			break
		}

		switch state {
		case stateHeader:
			key, val, ok := splitHeaderLine(line)
			if !ok {
				// A bare uppercase word that is not a recognized section
				// marker opens an unknown section: skip until the next
				// marker or EOF, per spec.md §6.
				if isBareSectionMarker(line) {
					state = stateUnknownSection
					continue
				}
				return Instance{}, fmt.Errorf("%w: malformed header line %q", ErrParse, line)
			}
			switch strings.ToUpper(key) {
			case "NAME":
				inst.Name = val
			case "COMMENT":
				inst.Comment = val
			}
		case stateInCoord:
			p, ok := parseCoordLine(line)
			if !ok {
				// A bare section marker ends the coord section and opens an
				// unknown section; any other non-coordinate line is malformed.
				if isBareSectionMarker(line) {
					state = stateUnknownSection
					continue
				}
				return Instance{}, fmt.Errorf("%w: malformed coordinate line %q", ErrParse, line)
			}
			inst.Points = append(inst.Points, p)
		case stateUnknownSection:
			switch upper {
			case nodeCoordSection, displayDataSection:
				state = stateInCoord
			}
			// otherwise: skip silently until next marker or EOF
		}
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(inst.Points) == 0 {
		return Instance{}, fmt.Errorf("%w: no coordinate data found", ErrParse)
	}
	return inst, nil
}

// splitHeaderLine splits a "KEY: VALUE" line. Returns ok=false if the line
// has no colon (it is not a header line).
func splitHeaderLine(line string) (key, val string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// isBareSectionMarker reports whether line looks like a standalone uppercase
// section keyword (no colon, no leading digit).
func isBareSectionMarker(line string) bool {
	if strings.Contains(line, ":") {
		return false
	}
	if line != "" && line[0] >= '0' && line[0] <= '9' {
		return false
	}
	return line == strings.ToUpper(line)
}

// parseCoordLine parses "<id> <x> <y>". ok is false if the line does not
// start with a parseable integer id.
func parseCoordLine(line string) (tsp.Point, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return tsp.Point{}, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.Point{}, false
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.Point{}, false
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.Point{}, false
	}
	return tsp.NewPoint(id, x, y), true
}
