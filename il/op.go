package il

// Op is an IL instruction kind.
type Op int

const (
	OP_LD    = Op(0)  // LD
	OP_ST    = Op(1)  // ST
	OP_AND   = Op(2)  // AND
	OP_ANDN  = Op(3)  // ANDN
	OP_OR    = Op(4)  // OR
	OP_ORN   = Op(5)  // ORN
	OP_XOR   = Op(6)  // XOR
	OP_XORN  = Op(7)  // XORN
	OP_ADD   = Op(8)  // ADD
	OP_SUB   = Op(9)  // SUB
	OP_MUL   = Op(10) // MUL
	OP_DIV   = Op(11) // DIV
	OP_MOD   = Op(12) // MOD
	OP_NOT   = Op(13) // NOT
	OP_S     = Op(14) // S
	OP_R     = Op(15) // R
	OP_JMP   = Op(16) // JMP
	OP_JMPC  = Op(17) // JMPC
	OP_JMPNC = Op(18) // JMPNC
)

// OpClass is the operand shape an instruction kind requires.
type OpClass int

const (
	CLASS_EXPR  = OpClass(0) // one expression operand
	CLASS_VAR   = OpClass(1) // one variable name operand
	CLASS_LABEL = OpClass(2) // one jump label operand
	CLASS_NONE  = OpClass(3) // no operand
)

// opSpec is one entry of the closed dispatch table.
type opSpec struct {
	name  string
	class OpClass
}

var opTable = [...]opSpec{
	OP_LD:    {"LD", CLASS_EXPR},
	OP_ST:    {"ST", CLASS_VAR},
	OP_AND:   {"AND", CLASS_EXPR},
	OP_ANDN:  {"ANDN", CLASS_EXPR},
	OP_OR:    {"OR", CLASS_EXPR},
	OP_ORN:   {"ORN", CLASS_EXPR},
	OP_XOR:   {"XOR", CLASS_EXPR},
	OP_XORN:  {"XORN", CLASS_EXPR},
	OP_ADD:   {"ADD", CLASS_EXPR},
	OP_SUB:   {"SUB", CLASS_EXPR},
	OP_MUL:   {"MUL", CLASS_EXPR},
	OP_DIV:   {"DIV", CLASS_EXPR},
	OP_MOD:   {"MOD", CLASS_EXPR},
	OP_NOT:   {"NOT", CLASS_NONE},
	OP_S:     {"S", CLASS_VAR},
	OP_R:     {"R", CLASS_VAR},
	OP_JMP:   {"JMP", CLASS_LABEL},
	OP_JMPC:  {"JMPC", CLASS_LABEL},
	OP_JMPNC: {"JMPNC", CLASS_LABEL},
}

// opMap maps mnemonic tokens to instruction kinds.
var opMap = map[string]Op{
	"LD":    OP_LD,
	"ST":    OP_ST,
	"AND":   OP_AND,
	"ANDN":  OP_ANDN,
	"OR":    OP_OR,
	"ORN":   OP_ORN,
	"XOR":   OP_XOR,
	"XORN":  OP_XORN,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"MUL":   OP_MUL,
	"DIV":   OP_DIV,
	"MOD":   OP_MOD,
	"NOT":   OP_NOT,
	"S":     OP_S,
	"R":     OP_R,
	"JMP":   OP_JMP,
	"JMPC":  OP_JMPC,
	"JMPNC": OP_JMPNC,
}

// String returns the mnemonic for the instruction kind.
func (op Op) String() (name string) {
	if int(op) >= 0 && int(op) < len(opTable) {
		name = opTable[op].name
	}
	return
}

// Class returns the operand shape for the instruction kind.
func (op Op) Class() (class OpClass) {
	class = CLASS_NONE
	if int(op) >= 0 && int(op) < len(opTable) {
		class = opTable[op].class
	}
	return
}
