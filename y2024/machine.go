package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2024"
)

var (
	// ErrReservedOperand is returned when a combo operand of 7 is evaluated.
	ErrReservedOperand = errors.New("machine: combo operand 7 is reserved")
	// ErrBadOpcode is returned for instructions outside 0-7.
	ErrBadOpcode = errors.New("machine: bad opcode")
	// ErrStepLimit is returned when a program runs for more than maxSteps
	// instructions.
	ErrStepLimit = errors.New("machine: step limit exceeded")
	// ErrNoSolution is returned by FindQuine when no initial A reproduces
	// the program.
	ErrNoSolution = errors.New("machine: no solution")
	// ErrNegativeShift is returned when a shift instruction's combo operand
	// reads a negative register.
	ErrNegativeShift = errors.New("machine: negative shift count")
	// ErrProgramTooLong is returned by FindQuine for programs whose answer
	// would not fit in an int.
	ErrProgramTooLong = errors.New("machine: program too long for quine search")
)

const (
	// maxSteps bounds a single run. Well-formed programs shift A down to
	// zero within a few hundred instructions.
	maxSteps = 1 << 20

	// maxQuineLen is the longest program FindQuine accepts: A grows by
	// three bits per program value and must stay below 1<<63.
	maxQuineLen = 21
)

type opcode int

const (
	adv opcode = iota // A = A >> combo
	bxl               // B ^= literal
	bst               // B = combo & 7
	jnz               // if A != 0 { ip = literal }
	bxc               // B ^= C
	out               // emit combo & 7
	bdv               // B = A >> combo
	cdv               // C = A >> combo
)

// Machine is a three-register machine running a program of 3-bit
// opcode/operand pairs.
type Machine struct {
	A, B, C int
	Program []int

	ip     int
	steps  int
	output []int
}

// ParseMachine reads the register and program declarations:
//
//	Register A: 729
//	Register B: 0
//	Register C: 0
//
//	Program: 0,1,5,4,3,0
func ParseMachine(input string) (*Machine, error) {
	regs, prog, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, errors.New("machine: missing blank line before program")
	}
	m := &Machine{}
	lines := strings.Split(regs, "\n")
	if len(lines) != 3 {
		return nil, fmt.Errorf("machine: got %d register lines, want 3", len(lines))
	}
	for i, r := range []*int{&m.A, &m.B, &m.C} {
		name := fmt.Sprintf("Register %c:", 'A'+i)
		v, ok := strings.CutPrefix(strings.TrimSpace(lines[i]), name)
		if !ok {
			return nil, fmt.Errorf("machine: want %q, got %q", name, lines[i])
		}
		n, err := aoc.ParseInt(v)
		if err != nil {
			return nil, fmt.Errorf("machine: %s %w", name, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("machine: %s %d is negative", name, n)
		}
		*r = n
	}
	p, ok := strings.CutPrefix(strings.TrimSpace(prog), "Program:")
	if !ok {
		return nil, fmt.Errorf("machine: want \"Program:\", got %q", prog)
	}
	for _, f := range strings.Split(p, ",") {
		n, err := aoc.ParseInt(f)
		if err != nil {
			return nil, fmt.Errorf("machine: program: %w", err)
		}
		if n < 0 || n > 7 {
			return nil, fmt.Errorf("machine: program value %d is not 3 bits", n)
		}
		m.Program = append(m.Program, n)
	}
	if len(m.Program)%2 != 0 {
		return nil, errors.New("machine: program has an odd number of values")
	}
	return m, nil
}

func (m *Machine) combo(arg int) (int, error) {
	switch arg {
	case 0, 1, 2, 3:
		return arg, nil
	case 4:
		return m.A, nil
	case 5:
		return m.B, nil
	case 6:
		return m.C, nil
	}
	return 0, ErrReservedOperand
}

// Halted reports whether the instruction pointer is past the program.
func (m *Machine) Halted() bool {
	return m.ip >= len(m.Program)-1
}

// Step executes one instruction.
func (m *Machine) Step() error {
	op, arg := opcode(m.Program[m.ip]), m.Program[m.ip+1]
	if op < adv || op > cdv {
		return fmt.Errorf("ip %d: opcode %d: %w", m.ip, op, ErrBadOpcode)
	}
	m.ip += 2
	m.steps++
	switch op {
	case bxl:
		m.B ^= arg
		return nil
	case jnz:
		if m.A != 0 {
			m.ip = arg
		}
		return nil
	case bxc:
		m.B ^= m.C
		return nil
	}

	v, err := m.combo(arg)
	if err != nil {
		return fmt.Errorf("ip %d: %w", m.ip-2, err)
	}
	if v < 0 && (op == adv || op == bdv || op == cdv) {
		return fmt.Errorf("ip %d: shift by %d: %w", m.ip-2, v, ErrNegativeShift)
	}
	switch op {
	case adv:
		m.A >>= v
	case bst:
		m.B = v & 7
	case out:
		m.output = append(m.output, v&7)
	case bdv:
		m.B = m.A >> v
	case cdv:
		m.C = m.A >> v
	}
	return nil
}

// Run executes the program until it halts and returns everything it output.
func (m *Machine) Run() ([]int, error) {
	for !m.Halted() {
		if m.steps >= maxSteps {
			return m.output, ErrStepLimit
		}
		if err := m.Step(); err != nil {
			return m.output, err
		}
	}
	return m.output, nil
}

// FindQuine returns the smallest initial A for which program outputs
// itself. A is built three bits at a time, most significant first; a
// candidate is only extended while its output matches the tail of the
// program.
func FindQuine(program []int, b, c int) (int, error) {
	if len(program) > maxQuineLen {
		return 0, fmt.Errorf("%d values: %w", len(program), ErrProgramTooLong)
	}
	type candidate struct {
		depth int // number of 3-bit chunks in a
		a     int
	}
	var st aoc.Stack[candidate]
	st.Push(candidate{})
	for {
		cand, ok := st.Pop()
		if !ok {
			return 0, ErrNoSolution
		}
		m := &Machine{A: cand.a, B: b, C: c, Program: program}
		got, err := m.Run()
		if err != nil {
			return 0, err
		}
		if slices.Equal(got, program) {
			return cand.a, nil
		}
		if cand.depth >= len(program) {
			continue
		}
		if cand.depth > 0 && !slices.Equal(got, program[len(program)-cand.depth:]) {
			continue
		}
		// Pushed in reverse so the smallest extension is tried first.
		for n := 7; n >= 0; n-- {
			st.Push(candidate{cand.depth + 1, cand.a<<3 | n})
		}
	}
}

func formatOutput(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}
