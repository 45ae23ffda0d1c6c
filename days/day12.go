package days

import (
	"github.com/maisem/aoc2024"
)

func day12(input string, cfg aoc.Config) (string, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return "", err
	}
	regions := findRegions(g)
	cfg.Logger().Debugf("%d regions", len(regions))
	var price, bulk int
	for _, r := range regions {
		price += r.area * r.perimeter
		bulk += r.area * r.sides
	}
	return answers(price, bulk), nil
}

type region struct {
	plant     byte
	area      int
	perimeter int
	sides     int
}

// findRegions labels each contiguous same-plant region of g and measures it.
func findRegions(g *aoc.Grid[byte]) []region {
	ids := aoc.NewGridLike(g, -1)
	var regions []region
	for p, plant := range g.All() {
		if ids.At(p) != -1 {
			continue
		}
		id := len(regions)
		ids.FloodFunc(p, id, func(q aoc.Pt, v int) bool {
			return v == -1 && g.At(q) == plant
		})
		regions = append(regions, region{plant: plant})
	}

	for p, id := range ids.All() {
		r := &regions[id]
		r.area++
		var same [4]bool
		for i, q := range p.Neighbors4() {
			if v, ok := ids.Get(q); ok && v == id {
				same[i] = true
			} else {
				r.perimeter++
			}
		}
		// Each corner of a region's outline starts exactly one side.
		for _, d := range aoc.Dirs {
			d2 := d.Right()
			a, b := same[d.Index()], same[d2.Index()]
			diag, ok := ids.Get(p.Add(d.Step(1)).Add(d2.Step(1)))
			switch {
			case !a && !b:
				r.sides++
			case a && b && (!ok || diag != id):
				r.sides++
			}
		}
	}
	return regions
}
