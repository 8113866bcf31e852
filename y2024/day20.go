package main

import (
	aoc "github.com/maisem/aoc2024"
)

/*
want=1

###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
*/
func (s solver) D20p1() any {
	return countCheats(raceTimes(parseMaze(s.Text())), 2, s.minSaving())
}

// want=285
func (s solver) D20p2() any {
	return countCheats(raceTimes(parseMaze(s.Text())), 20, s.minSaving())
}

// minSaving is the number of picoseconds a cheat must save to be counted.
func (s solver) minSaving() int {
	if s.SampleMode {
		return 50
	}
	return 100
}

// raceTimes returns the time from the start to every track tile. The track
// is a single path, so every tile settles before the end does.
func raceTimes(m *maze) map[aoc.Pt]int {
	res := aoc.MustGet(aoc.Search[aoc.Pt]{
		Start: m.start,
		Goal:  func(p aoc.Pt) bool { return p == m.end },
		Next: func(p aoc.Pt, edge func(aoc.Pt, int)) {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if m.open(n) {
					edge(n, 1)
				}
				return true
			})
		},
	}.Run())
	return res.Settled
}

// countCheats counts the cheats that pass through walls for at most radius
// picoseconds and save at least minSaving. A cheat is identified by its
// start and end tiles.
func countCheats(times map[aoc.Pt]int, radius, minSaving int) int {
	n := 0
	for from, t := range times {
		for dy := -radius; dy <= radius; dy++ {
			rest := radius - aoc.AbsDiff(dy, 0)
			for dx := -rest; dx <= rest; dx++ {
				to := aoc.Pt{X: from.X + dx, Y: from.Y + dy}
				if t2, ok := times[to]; ok && t2-t-from.MDist(to) >= minSaving {
					n++
				}
			}
		}
	}
	return n
}
