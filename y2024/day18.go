package main

import (
	"errors"
	"strings"

	aoc "github.com/maisem/aoc2024"
)

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	mem := s.space()
	return aoc.MustGet(mem.shortestExit())
}

// want=6,1
func (s solver) D18p2() any {
	mem := s.space()
	p, ok := mem.firstBlocker()
	if !ok {
		aoc.Log.Fatal("day 18: the exit is never cut off")
	}
	return p.String()
}

// memorySpace is a square grid of side size+1 that bytes fall into, one at
// a time, corrupting the cell they land on.
type memorySpace struct {
	size      int
	falling   []aoc.Pt
	fallen    int
	corrupted map[aoc.Pt]bool
}

func (s solver) space() *memorySpace {
	size, fallen := 70, 1024
	if s.SampleMode {
		size, fallen = 6, 12
	}
	var falling []aoc.Pt
	s.ForLines(func(line string) {
		if line = strings.TrimSpace(line); line != "" {
			falling = append(falling, aoc.MustGet(aoc.ParsePoints(line))...)
		}
	})
	s.Debugf("%d bytes, %d fallen", len(falling), fallen)
	return newMemorySpace(falling, size, fallen)
}

func newMemorySpace(falling []aoc.Pt, size, fallen int) *memorySpace {
	m := &memorySpace{
		size:      size,
		falling:   falling,
		corrupted: make(map[aoc.Pt]bool),
	}
	for range fallen {
		m.drop()
	}
	return m
}

// drop lets the next byte fall and returns where it landed.
func (m *memorySpace) drop() (aoc.Pt, bool) {
	if m.fallen >= len(m.falling) {
		return aoc.Pt{}, false
	}
	p := m.falling[m.fallen]
	m.fallen++
	m.corrupted[p] = true
	return p, true
}

func (m *memorySpace) open(p aoc.Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= m.size && p.Y <= m.size && !m.corrupted[p]
}

// shortestExit returns the fewest steps from the top left corner to the
// bottom right one.
func (m *memorySpace) shortestExit() (int, error) {
	exit := aoc.Pt{X: m.size, Y: m.size}
	res, err := aoc.Search[aoc.Pt]{
		Start: aoc.Pt{},
		Goal:  func(p aoc.Pt) bool { return p == exit },
		Next: func(p aoc.Pt, edge func(aoc.Pt, int)) {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if m.open(n) {
					edge(n, 1)
				}
				return true
			})
		},
	}.Run()
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// firstBlocker keeps dropping bytes, searching again after each one, and
// returns the first byte after which the exit can no longer be reached.
func (m *memorySpace) firstBlocker() (aoc.Pt, bool) {
	for {
		p, ok := m.drop()
		if !ok {
			return aoc.Pt{}, false
		}
		_, err := m.shortestExit()
		if errors.Is(err, aoc.ErrUnreachable) {
			return p, true
		}
		aoc.MustDo(err)
	}
}
