package days

import "github.com/maisem/aoc2024"

func day04(input string, _ aoc.Config) (string, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return "", err
	}
	return answers(countXMAS(g), countCrossMAS(g)), nil
}

// countXMAS counts occurrences of XMAS in any of the 8 directions.
func countXMAS(g *aoc.Grid[byte]) int {
	n := 0
	for p := range g.Positions() {
		if g.At(p) != 'X' {
			continue
		}
		aoc.Pt{}.ForNeighbors(func(d aoc.Pt) bool {
			if wordAt(g, p, d, "XMAS") {
				n++
			}
			return true
		})
	}
	return n
}

func wordAt(g *aoc.Grid[byte], p, d aoc.Pt, w string) bool {
	for i := 0; i < len(w); i++ {
		if c, ok := g.Get(p); !ok || c != w[i] {
			return false
		}
		p = p.Add(d)
	}
	return true
}

// countCrossMAS counts the A cells that are the center of two diagonal MAS
// words.
func countCrossMAS(g *aoc.Grid[byte]) int {
	isMS := func(a, b aoc.Pt) bool {
		x, y := g.At(a), g.At(b)
		return x == 'M' && y == 'S' || x == 'S' && y == 'M'
	}
	n := 0
	for p, c := range g.All() {
		if c != 'A' {
			continue
		}
		if isMS(p.Add(aoc.Pt{X: -1, Y: -1}), p.Add(aoc.Pt{X: 1, Y: 1})) &&
			isMS(p.Add(aoc.Pt{X: 1, Y: -1}), p.Add(aoc.Pt{X: -1, Y: 1})) {
			n++
		}
	}
	return n
}
