package il

import (
	"iter"
)

// Step is one executable instruction with its source attribution.
type Step struct {
	LineNo int    // 1-based source line number.
	Text   string // Source text after comment and label stripping.
	Instr  Instruction
}

// Program is an immutable loaded IL program: the ordered instruction
// sequence plus the label table. Labels map to the index of the
// instruction immediately following them and do not consume a slot.
type Program struct {
	Steps []Step
	Label map[string]int
}

// Debug resolves a program counter to its source step.
type Debug struct {
	*Step
	Pc int
}

func (prog *Program) Debug(pc int) (dbg Debug) {
	if pc >= 0 && pc < len(prog.Steps) {
		dbg = Debug{
			Step: &prog.Steps[pc],
			Pc:   pc,
		}
	}

	return
}

// Instructions iterates the executable sequence in order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, in Instruction) bool) {
		for pc := range prog.Steps {
			if !yield(pc, prog.Steps[pc].Instr) {
				return
			}
		}
	}
}
