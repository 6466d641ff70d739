// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package il

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/ilvm/internal"
)

// ACC is the accumulator register name. It always exists and always
// holds a machine word.
const ACC = "ACC"

// TraceFunc observes the register table after each executed instruction.
// Registers are presented in name order.
type TraceFunc func(pc int, in Instruction, registers iter.Seq2[string, Value])

// Machine executes a loaded Program against a register table.
//
// The register table and program counter are fresh per Machine; the
// Program and its label table are shared and read-only.
type Machine struct {
	Verbose bool      // If set, verbosely logs each executed instruction.
	Lenient bool      // If set, unresolvable operand tokens evaluate to 0.
	Trace   TraceFunc // Optional per-step observer. No-op when nil.

	Program  *Program
	Pc       int              // Index of the next instruction to execute.
	Register map[string]Value // Register table. Variables appear on first write.
}

// NewMachine creates a Machine with a fresh register table.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		Program:  prog,
		Register: map[string]Value{ACC: WordValue(0)},
	}

	return
}

// Registers iterates the register table in name order.
func (m *Machine) Registers() iter.Seq2[string, Value] {
	return internal.IterSeq2Sorted(m.Register)
}

func (m *Machine) acc() uint32 {
	return m.Register[ACC].AsWord()
}

func (m *Machine) setAcc(word uint32) {
	m.Register[ACC] = WordValue(word)
}

// Step executes the instruction at the current program counter and
// advances past it. A Step on a program counter beyond the end of the
// program reports done without executing anything.
func (m *Machine) Step() (done bool, err error) {
	if m.Pc >= len(m.Program.Steps) {
		done = true
		return
	}

	pc := m.Pc
	step := &m.Program.Steps[pc]
	err = m.Execute(step.Instr)
	if err != nil {
		return
	}

	if m.Trace != nil {
		m.Trace(pc, step.Instr, m.Registers())
	}

	// A taken jump has already rewritten Pc to land one short.
	m.Pc += 1

	return
}

// Run executes until the program counter falls off the end of the
// program. There is no HALT instruction; a backward jump that never
// releases control runs forever. Execution errors are fatal to the run
// and leave the register table at the point of failure.
func (m *Machine) Run() (err error) {
	var done bool
	for !done && err == nil {
		done, err = m.Step()
	}

	return
}

// Execute executes a single instruction against the machine state.
func (m *Machine) Execute(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(in), err)
		}
	}()

	if m.Verbose {
		log.Printf("%3d: %v", m.Pc, in)
	}

	switch in.Op {
	case OP_LD:
		var value uint32
		value, err = m.Evaluate(in.Operand)
		if err != nil {
			return
		}
		m.setAcc(value)
	case OP_ST:
		m.Register[in.Operand] = WordValue(m.acc())
	case OP_AND, OP_ANDN, OP_OR, OP_ORN, OP_XOR, OP_XORN,
		OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD:
		var value uint32
		value, err = m.Evaluate(in.Operand)
		if err != nil {
			return
		}
		var out uint32
		out, err = doAlu(in.Op, m.acc(), value)
		if err != nil {
			return
		}
		m.setAcc(out)
	case OP_NOT:
		m.setAcc(^m.acc())
	case OP_S:
		if m.Register[ACC].Truthy() {
			m.Register[in.Operand] = FlagValue(true)
		}
	case OP_R:
		if m.Register[ACC].Truthy() {
			m.Register[in.Operand] = FlagValue(false)
		}
	case OP_JMP, OP_JMPC, OP_JMPNC:
		taken := true
		switch in.Op {
		case OP_JMPC:
			taken = m.Register[ACC].Truthy()
		case OP_JMPNC:
			taken = !m.Register[ACC].Truthy()
		}
		if !taken {
			return
		}
		target, ok := m.Program.Label[in.Operand]
		if !ok {
			err = ErrLabelUndefined(in.Operand)
			return
		}
		// Land one short: the run loop increments unconditionally.
		m.Pc = target - 1
	default:
		err = ErrInstructionInvalid
	}

	return
}

// doAlu applies a binary accumulator operation. Wraparound is the
// natural uint32 overflow behavior.
func doAlu(op Op, acc uint32, value uint32) (out uint32, err error) {
	switch op {
	case OP_AND:
		out = acc & value
	case OP_ANDN:
		out = acc & ^value
	case OP_OR:
		out = acc | value
	case OP_ORN:
		out = acc | ^value
	case OP_XOR:
		out = acc ^ value
	case OP_XORN:
		out = acc ^ ^value
	case OP_ADD:
		out = acc + value
	case OP_SUB:
		out = acc - value
	case OP_MUL:
		out = acc * value
	case OP_DIV:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		out = acc / value
	case OP_MOD:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		out = acc % value
	}

	return
}
