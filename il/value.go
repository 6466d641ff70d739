package il

import (
	"strconv"
)

// ValueKind discriminates register table entries.
type ValueKind int

const (
	VALUE_WORD = ValueKind(0) // 32-bit machine word, written by ST
	VALUE_FLAG = ValueKind(1) // boolean flag, written by S and R
)

// Value is one register table entry: a 32-bit machine word or a boolean
// flag. Flags read back as 0/1 in integer contexts.
type Value struct {
	Kind ValueKind
	Word uint32 // valid when Kind == VALUE_WORD
	Flag bool   // valid when Kind == VALUE_FLAG
}

// WordValue makes a machine word entry.
func WordValue(word uint32) Value {
	return Value{Kind: VALUE_WORD, Word: word}
}

// FlagValue makes a boolean flag entry.
func FlagValue(flag bool) Value {
	return Value{Kind: VALUE_FLAG, Flag: flag}
}

// AsWord reads the entry in an integer context.
func (v Value) AsWord() (word uint32) {
	switch v.Kind {
	case VALUE_FLAG:
		if v.Flag {
			word = 1
		}
	default:
		word = v.Word
	}
	return
}

// Truthy reports whether the entry triggers conditional instructions.
func (v Value) Truthy() bool {
	return v.AsWord() != 0
}

// String returns the entry as it appears in register dumps.
func (v Value) String() (text string) {
	switch v.Kind {
	case VALUE_FLAG:
		text = strconv.FormatBool(v.Flag)
	default:
		text = strconv.FormatUint(uint64(v.Word), 10)
	}
	return
}
