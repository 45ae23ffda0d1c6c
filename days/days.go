// Package days has the Advent of Code 2024 puzzle solvers.
package days

import (
	"fmt"

	"github.com/maisem/aoc2024"
)

// All lists every implemented day in order.
var All = []aoc.Day{
	{Num: 1, Run: day01},
	{Num: 2, Run: day02},
	{Num: 4, Run: day04},
	{Num: 6, Run: day06},
	{Num: 8, Run: day08},
	{Num: 10, Run: day10},
	{Num: 11, Run: day11},
	{Num: 12, Run: day12},
	{Num: 15, Run: day15},
	{Num: 16, Run: day16},
	{Num: 18, Run: day18},
	{Num: 20, Run: day20},
}

func answers(parts ...any) string {
	s := fmt.Sprint(parts[0])
	for _, p := range parts[1:] {
		s += " " + fmt.Sprint(p)
	}
	return s
}
