// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package il

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates.
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Loader builds a Program from IL source text.
//
// Beyond the line grammar of the language itself, the loader strips ';'
// comments, supports single-assignment '.equ NAME VALUE' equates with
// token-wise substitution, and evaluates $( ... ) Starlark expressions at
// load time against the integer-valued equates.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.

	Label  map[string]int    // Map of jump labels to instruction indexes.
	Equate map[string]string // Map of equates.

	parser    Parser
	predefine map[string]string // Predefines
}

// Predefine defines an equate before loading begins.
func (ld *Loader) Predefine(equ string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does load-time $(...) evaluations.
func (ld *Loader) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		value32, verr := parseLiteral(str)
		if verr != nil {
			// Ignore non-numeric equates. They may be register
			// or label names.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// expand substitutes $(...) evaluations with decimal literals.
func (ld *Loader) expand(line string) (out string, err error) {
	out = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatUint(uint64(value), 10)
	})
	return
}

// Load parses an input stream into a Program.
//
// Loading is fail fast: the first bad line aborts with an *ErrSyntax
// carrying the line number and text, and no Program is returned.
func (ld *Loader) Load(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if ld.Label == nil {
		ld.Label = make(map[string]int, 16)
	}
	clear(ld.Label)
	ld.Equate = maps.Clone(sysEquate)
	for equ, value := range ld.predefine {
		ld.Equate[equ] = value
	}

	var steps []Step

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		// label: the instruction, if any, shares the line.
		if before, after, found := strings.Cut(line, ":"); found {
			label := strings.TrimSpace(before)
			_, ok := ld.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			ld.Label[label] = len(steps)
			line = strings.TrimSpace(after)
			if len(line) == 0 {
				continue
			}
		}

		ld.Equate["LINENO"] = strconv.Itoa(lineno)

		// .equ CONST VALUE
		words := strings.Fields(line)
		if words[0] == ".equ" {
			if len(words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := ld.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			ld.Equate[words[1]] = words[2]
			continue
		}

		// Do $() evaluations
		line, err = ld.expand(line)
		if err != nil {
			return
		}

		words = strings.Fields(line)
		for n, word := range words {
			equate, ok := ld.Equate[word]
			if ok {
				words[n] = equate
			}
		}
		line = strings.Join(words, " ")

		var in Instruction
		in, err = ld.parser.Parse(line)
		if err != nil {
			return
		}

		steps = append(steps, Step{LineNo: lineno, Text: line, Instr: in})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Steps: slices.Clone(steps),
		Label: maps.Clone(ld.Label),
	}

	return
}
