package main

import (
	"fmt"
	"strconv"
	"strings"

	"city-ca/internal/core"
)

type opKind int

const (
	opPaint opKind = iota
	opErase
	opFull
)

func (k opKind) String() string {
	switch k {
	case opPaint:
		return "paint"
	case opErase:
		return "erase"
	case opFull:
		return "full"
	}
	return "unknown"
}

// op is one scripted input: a paint stroke through points, a run of erase
// samples, or a full pass.
type op struct {
	kind   opKind
	points []core.Point
}

// parseScript reads commands separated by ';'. Each command is a verb
// followed by space-separated x,y points:
//
//	paint 2,2 8,2 8,6; erase 5,2; full
func parseScript(src string) ([]op, error) {
	var ops []op
	for i, raw := range strings.Split(src, ";") {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		var o op
		switch strings.ToLower(fields[0]) {
		case "paint", "p":
			o.kind = opPaint
		case "erase", "e":
			o.kind = opErase
		case "full", "f":
			o.kind = opFull
		default:
			return nil, fmt.Errorf("command %d: unknown verb %q", i+1, fields[0])
		}
		for _, f := range fields[1:] {
			p, err := parsePoint(f)
			if err != nil {
				return nil, fmt.Errorf("command %d: %w", i+1, err)
			}
			o.points = append(o.points, p)
		}
		if o.kind == opFull && len(o.points) > 0 {
			return nil, fmt.Errorf("command %d: full takes no points", i+1)
		}
		if o.kind != opFull && len(o.points) == 0 {
			return nil, fmt.Errorf("command %d: %s needs at least one point", i+1, o.kind)
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("point %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("point %q: bad y: %w", s, err)
	}
	return core.Point{X: x, Y: y}, nil
}
