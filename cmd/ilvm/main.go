// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ilvm/il"
	"github.com/ezrec/ilvm/interp"
)

func main() {
	var verbose bool
	var trace bool
	var lenient bool

	loader := &il.Loader{}

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Print the register table after every instruction")
	flag.BoolVar(&lenient, "l", false, "Evaluate unresolvable operands as 0")
	flag.Func("D", "Predefine an equate, as name=value", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got '%v'", arg)
		}
		loader.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected a single program file ('-' for stdin)", os.Args[0])
	}

	path := flag.Arg(0)
	input := os.Stdin
	if path != "-" {
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer inf.Close()
		input = inf
	}

	loader.Verbose = verbose
	prog, err := loader.Load(input)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	ip := interp.New(prog)
	ip.Verbose = verbose
	ip.Machine.Lenient = lenient

	if trace {
		ip.Machine.Trace = func(pc int, in il.Instruction, registers iter.Seq2[string, il.Value]) {
			fmt.Printf("%3d: %v\n", pc, in)
			for name, value := range registers {
				fmt.Printf("     %v = %v\n", name, value)
			}
		}
	}

	err = ip.Run()
	if err != nil {
		log.Fatal(err)
	}

	for name, value := range ip.Machine.Registers() {
		fmt.Printf("%v = %v\n", name, value)
	}
}
