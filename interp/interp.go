// Package interp drives an il.Machine with source-level attribution.
//
// The Interpreter couples a loaded Program with a fresh Machine and wraps
// runtime failures with the source line number of the failing instruction.
package interp

import (
	"github.com/ezrec/ilvm/il"
)

// Interpreter runs one Program to completion on its own Machine.
type Interpreter struct {
	Verbose bool // If set, enables verbose logging.

	*il.Machine
}

// New creates an Interpreter for a loaded program.
func New(prog *il.Program) (ip *Interpreter) {
	ip = &Interpreter{
		Machine: il.NewMachine(prog),
	}

	return
}

// LineNo returns the source line of the instruction about to execute,
// or 0 past the end of the program.
func (ip *Interpreter) LineNo() (lineno int) {
	dbg := ip.Machine.Program.Debug(ip.Machine.Pc)
	if dbg.Step != nil {
		lineno = dbg.LineNo
	}

	return
}

// Step executes a single instruction.
func (ip *Interpreter) Step() (done bool, err error) {
	ip.Machine.Verbose = ip.Verbose

	lineno := ip.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	done, err = ip.Machine.Step()

	return
}

// Run executes the program to completion, or until a fatal error.
func (ip *Interpreter) Run() (err error) {
	var done bool
	for !done && err == nil {
		done, err = ip.Step()
	}

	return
}
