package days

import (
	"slices"

	"github.com/maisem/aoc2024"
	"golang.org/x/exp/maps"
	"tailscale.com/util/set"
)

func day08(input string, _ aoc.Config) (string, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return "", err
	}
	ants := findAntennas(g)
	return answers(countAntinodes(g, ants, false), countAntinodes(g, ants, true)), nil
}

func findAntennas(g *aoc.Grid[byte]) map[byte][]aoc.Pt {
	ants := make(map[byte][]aoc.Pt)
	for p, c := range g.All() {
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			ants[c] = append(ants[c], p)
		}
	}
	return ants
}

// countAntinodes returns the number of distinct in-bounds antinode locations.
// With resonant set, every grid point in line with a pair of same-frequency
// antennas counts, including the antennas themselves.
func countAntinodes(g *aoc.Grid[byte], ants map[byte][]aoc.Pt, resonant bool) int {
	nodes := make(set.Set[aoc.Pt])
	freqs := maps.Keys(ants)
	slices.Sort(freqs)
	for _, f := range freqs {
		locs := ants[f]
		for i, a := range locs {
			for _, b := range locs[i+1:] {
				d := a.Sub(b)
				if !resonant {
					for _, p := range []aoc.Pt{a.Add(d), b.Sub(d)} {
						if g.IsInside(p) {
							nodes.Add(p)
						}
					}
					continue
				}
				for p := a; g.IsInside(p); p = p.Add(d) {
					nodes.Add(p)
				}
				for p := b; g.IsInside(p); p = p.Sub(d) {
					nodes.Add(p)
				}
			}
		}
	}
	return nodes.Len()
}
