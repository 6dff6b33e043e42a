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

package tasm

import (
	"bufio"
	"io"

	"github.com/davidsondfgl/tangle/pkg/tisa"
)

// Assemble runs both passes of the Tangle assembler over src. filename is
// used only for diagnostic context. On success, errs is empty and
// records holds one entry per instruction, in program order, fully
// relocated. On any diagnostic, records is nil: per spec, the tool never
// emits output once a diagnostic has fired.
func Assemble(filename string, src io.Reader, symtab *SymbolTable) (records []Record, errs []error) {
	labels := make(map[string]uint16)
	labelLines := make(map[string]int)

	var pending []Record
	var pc uint32

	scanner := bufio.NewScanner(src)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		tokens, lexErrs := lexLine(line, lineNo, filename)
		errs = append(errs, lexErrs...)
		if len(tokens) == 0 {
			continue
		}
		if len(lexErrs) > 0 {
			continue
		}

		idx := 0

		// Label definition: "name:" at the start of the line.
		if tokens[0].Type == TokIdent && len(tokens) > 1 && tokens[1].Type == TokColon {
			name := tokens[0].Value
			if _, exists := labels[name]; exists {
				errs = append(errs, &DuplicateLabelError{baseDiag{filename, lineNo}, name})
			} else {
				labels[name] = uint16(pc)
				labelLines[name] = lineNo
			}
			idx = 2
			if symtab != nil {
				if symtab.Labels == nil {
					symtab.Labels = make(map[string]uint16)
				}
				symtab.Labels[name] = uint16(pc)
			}
		}

		if idx >= len(tokens) {
			continue
		}

		if tokens[idx].Type != TokIdent {
			errs = append(errs, invalidLineErr(filename, lineNo))
			continue
		}

		mnemonic := tokens[idx].Value
		entry, ok := tisa.Lookup(mnemonic)
		if !ok {
			errs = append(errs, &UnknownMnemonicError{baseDiag{filename, lineNo}, mnemonic})
			continue
		}

		ctx := &encodeContext{
			entry:    entry,
			mnemonic: mnemonic,
			file:     filename,
			line:     lineNo,
			pc:       uint16(pc),
			labels:   labels,
		}

		operands := tokens[idx+1:]

		var rec Record
		var err error
		switch entry.Grammar {
		case tisa.GrammarNone:
			rec, err = encodeNone(ctx, operands)
		case tisa.GrammarOne:
			rec, err = encodeOne(ctx, operands)
		case tisa.GrammarTwo:
			rec, err = encodeTwo(ctx, operands)
		case tisa.GrammarThree:
			rec, err = encodeThree(ctx, operands)
		}

		if err != nil {
			errs = append(errs, err)
			pc++
			continue
		}

		pending = append(pending, rec)
		pc++
	}

	relocErrs := relocate(filename, pending, labels)
	errs = append(errs, relocErrs...)

	if len(errs) > 0 {
		return nil, errs
	}
	return pending, nil
}

func invalidLineErr(file string, line int) error {
	return &OperandError{baseDiag{file, line}, "", "expected a label definition or instruction"}
}
