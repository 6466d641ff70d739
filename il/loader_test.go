package il

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doLoad(t *testing.T, lines ...string) (prog *Program, err error) {
	t.Helper()

	ld := &Loader{}
	return ld.Load(strings.NewReader(strings.Join(lines, "\n")))
}

func TestLoader_Labels(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		"JMP Skip",
		"LD 0",
		"ST A",
		"Skip: LD 1",
		"ST B",
	)
	assert.NoError(err)
	assert.Equal(5, len(prog.Steps))
	assert.Equal(map[string]int{"Skip": 3}, prog.Label)
	assert.Equal(4, prog.Steps[3].LineNo)
	assert.Equal("LD 1", prog.Steps[3].Text)
	assert.Equal(Instruction{Op: OP_LD, Operand: "1"}, prog.Steps[3].Instr)
}

func TestLoader_LabelOnlyLine(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		"Start:",
		"LD 1",
		"End:",
	)
	assert.NoError(err)
	assert.Equal(1, len(prog.Steps))
	assert.Equal(0, prog.Label["Start"])
	assert.Equal(1, prog.Label["End"])
}

func TestLoader_BlankAndComment(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		"",
		"   ",
		"; a full-line comment",
		"LD 5 ; trailing comment",
		"\tST A",
	)
	assert.NoError(err)
	assert.Equal(2, len(prog.Steps))
	assert.Equal(4, prog.Steps[0].LineNo)
	assert.Equal(5, prog.Steps[1].LineNo)
}

func TestLoader_LabelDuplicate(t *testing.T) {
	assert := assert.New(t)

	_, err := doLoad(t,
		"Loop: LD 1",
		"Loop: LD 2",
	)
	assert.ErrorIs(err, ErrLabelDuplicate)

	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(2, syntax.LineNo)
}

func TestLoader_UnknownInstruction(t *testing.T) {
	assert := assert.New(t)

	_, err := doLoad(t,
		"LD 1",
		"FROB 2",
	)
	var unknown ErrInstructionUnknown
	assert.ErrorAs(err, &unknown)
	assert.Equal("FROB", string(unknown))

	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(2, syntax.LineNo)
	assert.Equal("FROB 2", syntax.Line)
}

func TestLoader_Equate(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		".equ LIMIT 10",
		"LD LIMIT",
	)
	assert.NoError(err)
	assert.Equal(1, len(prog.Steps))
	assert.Equal(Instruction{Op: OP_LD, Operand: "10"}, prog.Steps[0].Instr)
}

func TestLoader_EquateDuplicate(t *testing.T) {
	assert := assert.New(t)

	_, err := doLoad(t,
		".equ LIMIT 10",
		".equ LIMIT 20",
	)
	assert.ErrorIs(err, ErrEquateDuplicate)
}

func TestLoader_EquateSyntax(t *testing.T) {
	assert := assert.New(t)

	_, err := doLoad(t, ".equ LIMIT")
	assert.ErrorIs(err, ErrEquateSyntax)
}

func TestLoader_ParenEval(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		".equ N 3",
		"LD $(N * 2 + 1)",
		"ADD $(16 - 1)",
	)
	assert.NoError(err)
	assert.Equal(Instruction{Op: OP_LD, Operand: "7"}, prog.Steps[0].Instr)
	assert.Equal(Instruction{Op: OP_ADD, Operand: "15"}, prog.Steps[1].Instr)
}

func TestLoader_ParenEvalHexEquate(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		".equ MASK 16#F0",
		"LD $(MASK | 1)",
	)
	assert.NoError(err)
	assert.Equal(Instruction{Op: OP_LD, Operand: "241"}, prog.Steps[0].Instr)
}

func TestLoader_ParenEvalInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := doLoad(t, "LD $(no such thing)")
	assert.Error(err)

	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(1, syntax.LineNo)
}

func TestLoader_Predefine(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	ld.Predefine("K", "5")
	prog, err := ld.Load(strings.NewReader("LD K"))
	assert.NoError(err)
	assert.Equal(Instruction{Op: OP_LD, Operand: "5"}, prog.Steps[0].Instr)
}

func TestLoader_Lineno(t *testing.T) {
	assert := assert.New(t)

	prog, err := doLoad(t,
		"",
		"LD LINENO",
	)
	assert.NoError(err)
	assert.Equal(Instruction{Op: OP_LD, Operand: "2"}, prog.Steps[0].Instr)
}

func TestLoader_Reuse(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Load(strings.NewReader("One: LD 1"))
	assert.NoError(err)
	assert.Equal(map[string]int{"One": 0}, prog.Label)

	prog, err = ld.Load(strings.NewReader("Two: LD 2"))
	assert.NoError(err)
	assert.Equal(map[string]int{"Two": 0}, prog.Label)
}
