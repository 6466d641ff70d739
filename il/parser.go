package il

import (
	"errors"
	"strings"
)

// Parser converts one source line into an Instruction.
//
// The line must already have labels, comments, and surrounding whitespace
// stripped. The first whitespace-separated token is the mnemonic; every
// instruction except NOT takes exactly one operand.
type Parser struct{}

// Parse parses a single line as an instruction.
func (p *Parser) Parse(line string) (in Instruction, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrInstructionMissing
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrInstructionUnknown(words[0])
		return
	}

	args := words[1:]
	switch {
	case op.Class() == CLASS_NONE && len(args) != 0:
		err = errors.Join(ErrInstruction{Op: op}, ErrOperandExtra)
	case op.Class() != CLASS_NONE && len(args) == 0:
		err = errors.Join(ErrInstruction{Op: op}, ErrOperandMissing)
	case len(args) > 1:
		err = errors.Join(ErrInstruction{Op: op}, ErrOperandExtra)
	}
	if err != nil {
		return
	}

	in = Instruction{Op: op}
	if len(args) == 1 {
		in.Operand = args[0]
	}

	return
}
