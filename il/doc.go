// Package il implements an interpreter for the Instruction List (IL)
// programming language.
//
// IL is a flat, line-oriented notation with a single accumulator register
// (ACC), named variables created on first write, labeled jump targets, and
// a closed set of load/store/logical/arithmetic/branch instructions. All
// integer arithmetic is performed on 32-bit machine words and silently
// wraps.
//
// The Loader turns source text into an immutable Program; the Machine
// executes a Program against a register table with a simple fetch-execute
// loop. The loader additionally supports ';' comments, '.equ' equates,
// and compile-time $( ... ) expression evaluation.
package il
