package il

// Instruction is a single parsed IL operation. Instructions are created
// once at load time and never mutated.
type Instruction struct {
	Op      Op
	Operand string // expression token, variable name, or jump label; empty for NOT
}

// String returns the source form of the instruction.
func (in Instruction) String() (text string) {
	text = in.Op.String()
	if in.Op.Class() != CLASS_NONE {
		text += " " + in.Operand
	}
	return
}
