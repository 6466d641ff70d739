package il

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Steps: []Step{
			{LineNo: 1, Text: "LD 5", Instr: Instruction{Op: OP_LD, Operand: "5"}},
			{LineNo: 3, Text: "ST A", Instr: Instruction{Op: OP_ST, Operand: "A"}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Step)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Pc)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Step)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(1, dbg.Pc)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Steps: []Step{
			{LineNo: 1, Text: "LD 5", Instr: Instruction{Op: OP_LD, Operand: "5"}},
		},
	}

	assert.Nil(prog.Debug(10).Step)
	assert.Nil(prog.Debug(-1).Step)
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Steps: []Step{
			{LineNo: 1, Instr: Instruction{Op: OP_LD, Operand: "5"}},
			{LineNo: 2, Instr: Instruction{Op: OP_ST, Operand: "A"}},
			{LineNo: 3, Instr: Instruction{Op: OP_NOT}},
		},
	}

	pcs := []int{}
	ins := []Instruction{}
	for pc, in := range prog.Instructions() {
		pcs = append(pcs, pc)
		ins = append(ins, in)
	}

	assert.Equal([]int{0, 1, 2}, pcs)
	assert.Equal(Instruction{Op: OP_NOT}, ins[2])
}

func TestProgram_Instructions_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Steps: []Step{
			{LineNo: 1, Instr: Instruction{Op: OP_LD, Operand: "5"}},
			{LineNo: 2, Instr: Instruction{Op: OP_ST, Operand: "A"}},
		},
	}

	count := 0
	for range prog.Instructions() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}

func TestProgram_Instructions_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}

	count := 0
	for range prog.Instructions() {
		count++
	}

	assert.Equal(0, count)
}
