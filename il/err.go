package il

import (
	"errors"

	"github.com/ezrec/ilvm/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrDivisionByZero = errors.New(f("division by zero"))

	// Parser errors
	ErrInstructionMissing = errors.New(f("instruction missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))

	// Loader errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
)

// ErrInstructionUnknown reports a mnemonic absent from the dispatch table.
type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("unknown instruction %v", string(err))
}

// ErrExpressionUnknown reports an operand token that is neither a literal
// nor a register name.
type ErrExpressionUnknown string

func (err ErrExpressionUnknown) Error() string {
	return f("unknown expression: %v", string(err))
}

// ErrRegisterUndefined reports a read of a register that has never been
// written.
type ErrRegisterUndefined string

func (err ErrRegisterUndefined) Error() string {
	return f("register %v undefined", string(err))
}

// ErrLabelUndefined reports a jump to a label absent from the label table.
type ErrLabelUndefined string

func (err ErrLabelUndefined) Error() string {
	return f("label %v undefined", string(err))
}

// ErrParseExpression reports a $( ... ) evaluation failure.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrInstruction marks which instruction an execution error came from.
type ErrInstruction Instruction

func (err ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(err).String())
}

func (err ErrInstruction) Is(other error) (ok bool) {
	_, ok = other.(ErrInstruction)
	return
}

// ErrSyntax attributes a loading error to its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
