package days

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2024"
)

func day15(input string, cfg aoc.Config) (string, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	mapText, moveText, ok := strings.Cut(input, "\n\n")
	if !ok {
		return "", errors.New("missing blank line between map and moves")
	}
	g, err := aoc.ParseGrid(mapText)
	if err != nil {
		return "", err
	}
	robot, ok := aoc.FindReplace(g, '@', '.')
	if !ok {
		return "", errors.New("no robot")
	}
	moves, err := parseMoves(moveText)
	if err != nil {
		return "", err
	}
	for _, d := range moves {
		robot = stepRobot(g, robot, d)
	}
	if cfg.Verbose {
		cfg.Logger().Debugf("final warehouse:\n%s", aoc.GridString(g))
	}
	return answers(boxGPSSum(g)), nil
}

func parseMoves(s string) ([]aoc.Dir, error) {
	var out []aoc.Dir
	for _, c := range s {
		switch c {
		case '^':
			out = append(out, aoc.North)
		case 'v':
			out = append(out, aoc.South)
		case '>':
			out = append(out, aoc.East)
		case '<':
			out = append(out, aoc.West)
		case '\n', '\r':
		default:
			return nil, fmt.Errorf("bad move %q", c)
		}
	}
	return out, nil
}

// stepRobot moves the robot one step in d, pushing any line of boxes ahead of
// it, and returns its new position.
func stepRobot(g *aoc.Grid[byte], p aoc.Pt, d aoc.Dir) aoc.Pt {
	next := p.Add(d.Step(1))
	q := next
	for g.At(q) == 'O' {
		q = q.Add(d.Step(1))
	}
	if g.At(q) != '.' {
		return p
	}
	if q != next {
		g.Set(q, 'O')
		g.Set(next, '.')
	}
	return next
}

func boxGPSSum(g *aoc.Grid[byte]) int {
	sum := 0
	for p, c := range g.All() {
		if c == 'O' {
			sum += p.X + 100*p.Y
		}
	}
	return sum
}
