package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"city-ca/internal/core"
	"city-ca/internal/sims/city"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var script string
	var showMap bool
	var settle bool
	var overrides kvList

	flag.StringVar(&script, "script", "paint 2,2", "input events, e.g. \"paint 2,2 8,2; erase 5,2; full\"")
	flag.BoolVar(&showMap, "map", false, "print the final grid as ASCII")
	flag.BoolVar(&settle, "settle", false, "run a full pass after the script")
	flag.Var(&overrides, "set", "config override in key=value form (repeatable): w, h, seed, noise_scale, resource_threshold, radius")
	flag.Parse()

	opts := map[string]string{}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "error: override %q is not key=value\n", kv)
			os.Exit(2)
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	ops, err := parseScript(script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if settle {
		ops = append(ops, op{kind: opFull})
	}

	world, err := city.NewWithConfig(city.FromMap(opts))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := world.Config()
	fmt.Printf("=== City Replay ===\n")
	fmt.Printf("grid=%dx%d seed=%d radius=%d noise_scale=%g resource_threshold=%g\n\n",
		cfg.Width, cfg.Height, cfg.Seed, cfg.Params.Radius, cfg.Params.NoiseScale, cfg.Params.ResourceThreshold)

	run(os.Stdout, world, ops)
	fmt.Println()
	printCounts(os.Stdout, world.Counts())
	if showMap {
		fmt.Println()
		fmt.Print(world.Grid().String())
	}
}

// run replays ops against world and prints one line per event.
func run(out io.Writer, world *city.World, ops []op) int {
	events := 0
	for _, o := range ops {
		switch o.kind {
		case opPaint:
			world.PaintBegin(o.points[0])
			if len(o.points) == 1 {
				report(out, events, "paint", o.points[0], world.PaintDrag(o.points[0]))
				events++
				continue
			}
			for _, p := range o.points[1:] {
				report(out, events, "paint", p, world.PaintDrag(p))
				events++
			}
		case opErase:
			for _, p := range o.points {
				report(out, events, "erase", p, world.EraseDrag(p))
				events++
			}
		case opFull:
			world.Step()
			fmt.Fprintf(out, "[%03d] full          dirty=%d\n", events, len(world.LastChanges()))
			events++
		}
	}
	return events
}

func report(out io.Writer, n int, verb string, p core.Point, changes []core.Change) {
	fmt.Fprintf(out, "[%03d] %-5s %3d,%-3d dirty=%d\n", n, verb, p.X, p.Y, len(changes))
}

func printCounts(out io.Writer, counts map[core.CellState]int) {
	fmt.Fprintln(out, "cells:")
	for _, s := range core.AllCellStates() {
		fmt.Fprintf(out, "  %-12s %d\n", s, counts[s])
	}
}
