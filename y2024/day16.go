package main

import (
	"fmt"

	aoc "github.com/maisem/aoc2024"
)

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	m := parseMaze(s.Text())
	res := aoc.MustGet(m.search(false).Run())
	s.Debugf("settled %d poses; best path has %d poses", len(res.Settled), len(res.Path()))
	return res.Cost
}

// want=45
func (s solver) D16p2() any {
	m := parseMaze(s.Text())
	return tilesOnBestPaths(aoc.MustGet(m.search(true).Run()))
}

// mazeCost is the cost of each reindeer move.
type mazeCost struct {
	Step int // move one tile forward
	Turn int // rotate a quarter turn in place
}

var reindeerCost = mazeCost{Step: 1, Turn: 1000}

type maze struct {
	walls      aoc.Grid[bool]
	start, end aoc.Pt
	cost       mazeCost
}

func parseMaze(input string) *maze {
	m := &maze{cost: reindeerCost}
	var foundStart, foundEnd bool
	walls, err := aoc.ParseGrid(input, func(r rune) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.', 'S', 'E':
			return false, nil
		}
		return false, fmt.Errorf("%q: %w", r, aoc.ErrBadCell)
	})
	aoc.MustDo(err)
	runes := aoc.MustGet(aoc.ParseRunes(input))
	m.start, foundStart = aoc.Find(runes, 'S')
	m.end, foundEnd = aoc.Find(runes, 'E')
	if !foundStart || !foundEnd {
		panic("maze needs both S and E")
	}
	m.walls = walls
	return m
}

func (m *maze) open(p aoc.Pt) bool {
	wall, ok := m.walls.AtOk(p)
	return ok && !wall
}

// search returns a search from the start tile facing east to any pose on the
// end tile.
func (m *maze) search(allPaths bool) aoc.Search[aoc.Pose] {
	return aoc.Search[aoc.Pose]{
		Start: aoc.Pose{Pt: m.start, Dir: aoc.East},
		Goal: func(p aoc.Pose) bool {
			return p.Pt == m.end
		},
		Next: func(p aoc.Pose, edge func(aoc.Pose, int)) {
			if f := p.Forward(); m.open(f.Pt) {
				edge(f, m.cost.Step)
			}
			edge(aoc.Pose{Pt: p.Pt, Dir: p.Dir.Left()}, m.cost.Turn)
			edge(aoc.Pose{Pt: p.Pt, Dir: p.Dir.Right()}, m.cost.Turn)
		},
		AllPaths: allPaths,
	}
}

// tilesOnBestPaths counts the distinct tiles covered by any minimum-cost
// path, ignoring facing.
func tilesOnBestPaths(res *aoc.SearchResult[aoc.Pose]) int {
	tiles := make(map[aoc.Pt]bool)
	for p := range res.OnBestPaths() {
		tiles[p.Pt] = true
	}
	return len(tiles)
}
