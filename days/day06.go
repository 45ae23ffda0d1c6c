package days

import (
	"errors"

	"github.com/maisem/aoc2024"
)

func day06(input string, _ aoc.Config) (string, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return "", err
	}
	start, ok := aoc.Find(g, '^')
	if !ok {
		return "", errors.New("no guard")
	}
	visited, n, _ := guardWalk(g, start, aoc.North, nil)

	loops := 0
	for p, v := range visited.All() {
		if p == start || v == 0 {
			continue
		}
		if _, _, exited := guardWalk(g, start, aoc.North, &p); !exited {
			loops++
		}
	}
	return answers(n, loops), nil
}

// guardWalk walks the guard from start until it leaves the grid or repeats a
// position and direction. It returns the per-cell bitmask of directions
// visited, the number of distinct cells visited, and whether the guard left.
func guardWalk(g *aoc.Grid[byte], p aoc.Pt, dir aoc.Dir, obstacle *aoc.Pt) (*aoc.Grid[uint8], int, bool) {
	visited := aoc.NewGridLike(g, uint8(0))
	n := 0
	for {
		cell := visited.Ptr(p)
		if *cell == 0 {
			n++
		}
		m := uint8(1) << dir.Index()
		if *cell&m != 0 {
			return visited, n, false
		}
		*cell |= m

		for turns := 0; ; turns++ {
			q := p.Add(dir.Step(1))
			c, ok := g.Get(q)
			if !ok {
				return visited, n, true
			}
			if c != '#' && (obstacle == nil || q != *obstacle) {
				p = q
				break
			}
			if turns == 3 {
				return visited, n, false // boxed in
			}
			dir = dir.Right()
		}
	}
}
