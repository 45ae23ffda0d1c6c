package days

import (
	"github.com/maisem/aoc2024"
)

func day10(input string, _ aoc.Config) (string, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return "", err
	}
	var score, rating int
	for p, c := range g.All() {
		if c == '0' {
			s, r := trailhead(g, p)
			score += s
			rating += r
		}
	}
	return answers(score, rating), nil
}

// trailhead returns the number of distinct peaks reachable from p by trails
// that climb one level per step, and the number of distinct such trails.
func trailhead(g *aoc.Grid[byte], p aoc.Pt) (score, rating int) {
	peaks := make(map[aoc.Pt]int)
	var stk aoc.Stack[aoc.Pt]
	stk.Push(p)
	stk.While(func(p aoc.Pt) bool {
		h := g.At(p) + 1
		for _, q := range p.Neighbors4() {
			if c, ok := g.Get(q); !ok || c != h {
				continue
			}
			if h == '9' {
				peaks[q]++
			} else {
				stk.Push(q)
			}
		}
		return true
	})
	for _, n := range peaks {
		rating += n
	}
	return len(peaks), rating
}
