package main

import (
	aoc "github.com/maisem/aoc2024"
)

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (s solver) D12p1() any {
	return gardenPrice(s.Text(), false)
}

// want=1206
func (s solver) D12p2() any {
	return gardenPrice(s.Text(), true)
}

func gardenPrice(input string, bulk bool) int {
	g := aoc.MustGet(aoc.ParseGrid(input, plant))
	return aoc.Price(aoc.FindRegions(g), bulk)
}

func plant(r rune) (rune, error) {
	if r < 'A' || r > 'Z' {
		return 0, aoc.ErrBadCell
	}
	return r, nil
}
