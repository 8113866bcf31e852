package main

import (
	"slices"

	aoc "github.com/maisem/aoc2024"
)

/*
want=4,6,3,5,6,3,5,2,1,0

Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
*/
func (s solver) D17p1() any {
	m := aoc.MustGet(ParseMachine(s.Text()))
	return formatOutput(aoc.MustGet(m.Run()))
}

/*
want=117440

Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
*/
func (s solver) D17p2() any {
	m := aoc.MustGet(ParseMachine(s.Text()))
	a, err := FindQuine(m.Program, m.B, m.C)
	if err != nil {
		aoc.Log.Fatalf("day 17: %v", err)
	}
	s.Debugf("quine A=%d (%o octal)", a, a)
	check := &Machine{A: a, B: m.B, C: m.C, Program: m.Program}
	if got := aoc.MustGet(check.Run()); !slices.Equal(got, m.Program) {
		aoc.Log.Fatalf("day 17: A=%d outputs %v; want %v", a, got, m.Program)
	}
	return a
}
