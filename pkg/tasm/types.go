// Copyright (C) 2021  Antonio Lassandro
// Copyright (c) 2020 Davidson Francis <davidsondfgl@gmail.com>

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package tasm implements the two-pass Tangle assembler: lexing,
// operand-grammar parsing, encoding, and label relocation.
package tasm

import (
	"fmt"

	"github.com/davidsondfgl/tangle/pkg/tisa"
)

// TokType classifies a lexed token.
type TokType int

const (
	TokEOL TokType = iota
	TokIdent
	TokPercent
	TokDollar
	TokColon
	TokComma
	TokLParen
	TokRParen
)

// Token is a single lexed unit with its source position.
type Token struct {
	Type  TokType
	Value string
	Line  int
	Col   int
}

// Record is a single assembled instruction: its encoded word, its
// encoding class (needed by the relocator to know how to patch an
// unresolved label), its program-word index, and the name of the label
// it's still waiting on, if any.
type Record struct {
	Word         uint16
	Class        tisa.Class
	PC           uint16
	PendingLabel string
	Line         int
}

// SymbolTable maps label names to their program-word offset.
type SymbolTable struct {
	Labels map[string]uint16
}

// Diagnostic is the common shape every fatal assembler error implements:
// it carries the source file and line so the driver can render
// "<file>:<line>: Error: <message>".
type Diagnostic interface {
	error
	Pos() (file string, line int)
}

type baseDiag struct {
	File string
	Line int
}

func (b baseDiag) Pos() (string, int) { return b.File, b.Line }

// LexError reports an unrecognized character in the source line.
type LexError struct {
	baseDiag
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d: Error: unexpected character %q", e.File, e.Line, e.Char)
}

// UnknownMnemonicError reports a token that is neither a known mnemonic
// nor a label definition.
type UnknownMnemonicError struct {
	baseDiag
	Mnemonic string
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("%s:%d: Error: unknown instruction '%s'", e.File, e.Line, e.Mnemonic)
}

// OperandError reports a malformed operand list: wrong arity, wrong
// operand kind, bad punctuation, an out-of-range register, or an
// out-of-range / unparsable number.
type OperandError struct {
	baseDiag
	Mnemonic string
	Reason   string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s:%d: Error: invalid operand for '%s': %s", e.File, e.Line, e.Mnemonic, e.Reason)
}

// DuplicateLabelError reports a label name defined more than once.
type DuplicateLabelError struct {
	baseDiag
	Name string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("%s:%d: Error: label '%s' already defined", e.File, e.Line, e.Name)
}

// UndefinedLabelError reports a label referenced but never defined.
type UndefinedLabelError struct {
	baseDiag
	Name string
}

func (e *UndefinedLabelError) Error() string {
	return fmt.Sprintf("%s:%d: Error: undefined label '%s'", e.File, e.Line, e.Name)
}

// DisplacementOutOfRangeError reports a branch or AMI-immediate label
// reference whose resolved displacement does not fit its field. Kind is
// "branch" or "ami" and selects the wording.
type DisplacementOutOfRangeError struct {
	baseDiag
	Name string
	Kind string
}

func (e *DisplacementOutOfRangeError) Error() string {
	if e.Kind == "branch" {
		return fmt.Sprintf("%s:%d: Error: label too far, use register-based branch", e.File, e.Line)
	}
	return fmt.Sprintf("%s:%d: Error: label (%s) is too big to fit in the immediate field", e.File, e.Line, e.Name)
}

// IOError wraps a filesystem error encountered while reading source or
// writing the hex image.
type IOError struct {
	baseDiag
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s:%d: Error: %s", e.File, e.Line, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
