package main

import (
	aoc "github.com/maisem/aoc2024"
)

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return blinkAll(aoc.Fields(s.Text()), 25)
}

// want=65601038650482
func (s solver) D11p2() any {
	return blinkAll(aoc.Fields(s.Text()), 75)
}

type stone struct {
	n      int
	blinks int
}

// blinkAll returns how many stones the row turns into after the given
// number of blinks. Stones never affect each other, so each one is counted
// on its own, sharing one cache.
func blinkAll(stones []int, blinks int) int {
	m := aoc.NewMemo(blink)
	total := 0
	for _, n := range stones {
		total += m.Get(stone{n, blinks})
	}
	return total
}

func blink(m *aoc.Memo[stone, int], s stone) int {
	if s.blinks == 0 {
		return 1
	}
	next := s.blinks - 1
	if s.n == 0 {
		return m.Get(stone{1, next})
	}
	if d := aoc.NumDigits(s.n); d%2 == 0 {
		div := aoc.Pow10(d / 2)
		return m.Get(stone{s.n / div, next}) + m.Get(stone{s.n % div, next})
	}
	return m.Get(stone{s.n * 2024, next})
}
