package days

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2024"
)

const (
	memorySize  = 71
	bytesFallen = 1024
)

func day18(input string, cfg aoc.Config) (string, error) {
	coords, err := parseFallingBytes(input)
	if err != nil {
		return "", err
	}
	steps, err := stepsAfter(coords, memorySize, bytesFallen)
	if err != nil {
		return "", err
	}
	p, ok := firstBlocking(coords, memorySize, cfg)
	if !ok {
		return answers(steps, "failed"), nil
	}
	return answers(steps, p), nil
}

func parseFallingBytes(input string) ([]aoc.Pt, error) {
	var out []aoc.Pt
	for i, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := aoc.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(v) != 2 {
			return nil, fmt.Errorf("line %d: want x,y, got %q", i+1, line)
		}
		out = append(out, aoc.Pt{X: v[0], Y: v[1]})
	}
	return out, nil
}

func memoryOpen(_ aoc.Pt, c byte) bool { return c == '.' }

// stepsAfter returns the shortest number of steps from the top left to the
// bottom right corner of a dim by dim memory space after the first n bytes
// have fallen.
func stepsAfter(coords []aoc.Pt, dim, n int) (int, error) {
	g := aoc.NewGrid(dim, dim, byte('.'))
	for _, p := range coords[:min(n, len(coords))] {
		g.Set(p, '#')
	}
	dist := aoc.BFS(g, aoc.Pt{X: dim - 1, Y: dim - 1}, memoryOpen)
	d := dist.At(aoc.Pt{})
	if d < 0 {
		return 0, errors.New("exit unreachable")
	}
	return d, nil
}

// firstBlocking returns the first falling byte that cuts the top left corner
// off from the bottom right one. Reachability is only recomputed when a byte
// lands on a cell that was reachable.
func firstBlocking(coords []aoc.Pt, dim int, cfg aoc.Config) (aoc.Pt, bool) {
	log := cfg.Logger()
	g := aoc.NewGrid(dim, dim, byte('.'))
	goal := aoc.Pt{X: dim - 1, Y: dim - 1}
	reach := aoc.BFS(g, goal, memoryOpen)
	for _, p := range coords {
		d, ok := reach.Get(p)
		if !ok {
			continue
		}
		g.Set(p, '#')
		if d >= 0 {
			aoc.BFSInto(reach, g, goal, memoryOpen)
		}
		blocked := reach.At(aoc.Pt{}) < 0
		if cfg.Verbose {
			log.WithField("byte", p).Debugf("dist=%d blocked=%v", d, blocked)
		}
		if blocked {
			return p, true
		}
	}
	return aoc.Pt{}, false
}
