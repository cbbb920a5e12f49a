// Package tsplib - TSPLIB reader: headers, coordinate section, Load.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspga/tsp"
)

const (
	coordSection = "NODE_COORD_SECTION"
	endOfFile    = "EOF"
)

// Instance is one parsed TSPLIB file.
type Instance struct {
	Name           string
	Comment        string
	Type           string
	EdgeWeightType string
	Dimension      int // as declared in the header; 0 when absent
	Cities         []tsp.City
}

// PointSet validates the parsed cities and builds a tsp.PointSet from them.
func (in *Instance) PointSet() (*tsp.PointSet, error) {
	return tsp.NewPointSet(in.Cities)
}

// Load opens path and parses it with Parse.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse reads a TSPLIB instance from r.
//
// Errors: ErrMissingCoordSection, ErrMissingEOF, ErrMalformedLine (wrapped,
// with line number), ErrNoCities, or the reader's own error.
//
// Complexity: O(size of input).
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst      = &Instance{}
		sc        = bufio.NewScanner(r)
		inSection bool
		lineNo    int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if !inSection {
			if line == coordSection {
				inSection = true
				continue
			}
			inst.header(line)
			continue
		}

		switch line {
		case "":
			continue
		case endOfFile:
			if len(inst.Cities) == 0 {
				return nil, ErrNoCities
			}
			return inst, nil
		}

		c, err := parseCity(line, lineNo)
		if err != nil {
			return nil, err
		}
		inst.Cities = append(inst.Cities, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}
	if !inSection {
		return nil, ErrMissingCoordSection
	}

	return nil, ErrMissingEOF
}

// header records a "KEY : VALUE" line. Lines without a colon, unknown keys
// and a DIMENSION that is not a plain integer are ignored.
func (in *Instance) header(line string) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case "NAME":
		in.Name = value
	case "COMMENT":
		in.Comment = value
	case "TYPE":
		in.Type = value
	case "EDGE_WEIGHT_TYPE":
		in.EdgeWeightType = value
	case "DIMENSION":
		if d, err := strconv.Atoi(value); err == nil {
			in.Dimension = d
		}
	}
}

// parseCity decodes "<int id> <float x> <float y>".
func parseCity(line string, lineNo int) (tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return tsp.City{}, fmt.Errorf("line %d: %q has %d fields, want 3: %w",
			lineNo, line, len(fields), ErrMalformedLine)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.City{}, fmt.Errorf("line %d: id: %w: %w", lineNo, ErrMalformedLine, err)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("line %d: x: %w: %w", lineNo, ErrMalformedLine, err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("line %d: y: %w: %w", lineNo, ErrMalformedLine, err)
	}

	return tsp.City{ID: id, X: x, Y: y}, nil
}
