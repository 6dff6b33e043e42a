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

package tisa

import "strings"

// Entry describes how a single mnemonic assembles: its opcode, its
// encoding class, and which operand grammar the parser should use.
type Entry struct {
	Opcode  Opcode
	Class   Class
	Grammar Grammar
}

// mnemonics is the authoritative mnemonic -> encoding table. "nop" aliases
// OpNEG: on hardware a unary op reading and (if it had one) writing r0,
// which is wired to zero, so its observable effect is identity. See
// Design Note on nop encoding.
var mnemonics = map[string]Entry{
	"or":  {OpOR, ClassAMI, GrammarTwo},
	"and": {OpAND, ClassAMI, GrammarTwo},
	"xor": {OpXOR, ClassAMI, GrammarTwo},
	"sll": {OpSLL, ClassAMI, GrammarTwo},
	"slr": {OpSLR, ClassAMI, GrammarTwo},
	"not": {OpNOT, ClassAMI, GrammarOne},
	"neg": {OpNEG, ClassAMI, GrammarOne},

	"add": {OpADD, ClassAMI, GrammarTwo},
	"sub": {OpSUB, ClassAMI, GrammarTwo},
	"cmp": {OpCMP, ClassAMI, GrammarTwo},

	"mov":   {OpMOV, ClassAMI, GrammarTwo},
	"movhi": {OpMOVHI, ClassAMI, GrammarTwo},
	"movlo": {OpMOVLO, ClassAMI, GrammarTwo},

	"je":   {OpJE, ClassBRA, GrammarOne},
	"jne":  {OpJNE, ClassBRA, GrammarOne},
	"jgs":  {OpJGS, ClassBRA, GrammarOne},
	"jgu":  {OpJGU, ClassBRA, GrammarOne},
	"jls":  {OpJLS, ClassBRA, GrammarOne},
	"jlu":  {OpJLU, ClassBRA, GrammarOne},
	"jges": {OpJGES, ClassBRA, GrammarOne},
	"jgeu": {OpJGEU, ClassBRA, GrammarOne},
	"jles": {OpJLES, ClassBRA, GrammarOne},
	"jleu": {OpJLEU, ClassBRA, GrammarOne},
	"j":    {OpJ, ClassBRA, GrammarOne},
	"jal":  {OpJAL, ClassBRA, GrammarOne},

	"lw": {OpLW, ClassMEM, GrammarThree},
	"sw": {OpSW, ClassMEM, GrammarThree},

	"nop": {OpNEG, ClassAMI, GrammarNone},
}

// Lookup resolves a mnemonic case-insensitively.
func Lookup(mnemonic string) (Entry, bool) {
	entry, ok := mnemonics[strings.ToLower(mnemonic)]
	return entry, ok
}
