package main

import (
	"golang.org/x/exp/maps"

	aoc "github.com/maisem/aoc2024"
)

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	return trailheadScores(aoc.MustGet(aoc.ParseDigits(s.Text())))
}

// want=81
func (s solver) D10p2() any {
	return trailheadRatings(aoc.MustGet(aoc.ParseDigits(s.Text())))
}

// uphill calls f for each neighbor of p exactly one higher than p.
func uphill(g aoc.Grid[int], p aoc.Pt, f func(aoc.Pt)) {
	h := g.At(p)
	p.ForImmediateNeighbors(func(n aoc.Pt) bool {
		if v, ok := g.AtOk(n); ok && v == h+1 {
			f(n)
		}
		return true
	})
}

// trailheadScores sums, over every 0, the number of distinct 9s reachable
// by a trail climbing one step at a time.
func trailheadScores(g aoc.Grid[int]) int {
	peaks := aoc.NewMemo(func(m *aoc.Memo[aoc.Pt, map[aoc.Pt]bool], p aoc.Pt) map[aoc.Pt]bool {
		if g.At(p) == 9 {
			return map[aoc.Pt]bool{p: true}
		}
		out := make(map[aoc.Pt]bool)
		uphill(g, p, func(n aoc.Pt) {
			maps.Copy(out, m.Get(n))
		})
		return out
	})
	total := 0
	g.All(func(p aoc.Pt, h int) bool {
		if h == 0 {
			total += len(peaks.Get(p))
		}
		return true
	})
	return total
}

// trailheadRatings sums, over every 0, the number of distinct trails that
// lead from it to any 9.
func trailheadRatings(g aoc.Grid[int]) int {
	rating := aoc.NewMemo(func(m *aoc.Memo[aoc.Pt, int], p aoc.Pt) int {
		if g.At(p) == 9 {
			return 1
		}
		n := 0
		uphill(g, p, func(next aoc.Pt) {
			n += m.Get(next)
		})
		return n
	})
	total := 0
	g.All(func(p aoc.Pt, h int) bool {
		if h == 0 {
			total += rating.Get(p)
		}
		return true
	})
	return total
}
