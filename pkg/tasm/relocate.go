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

import "github.com/davidsondfgl/tangle/pkg/tisa"

// relocate is pass 2: every record still carrying a pending label is
// patched against the now-complete symbol table, in program-word order.
func relocate(filename string, records []Record, labels map[string]uint16) []error {
	var errs []error

	for i := range records {
		rec := &records[i]
		if rec.PendingLabel == "" {
			continue
		}

		off, ok := labels[rec.PendingLabel]
		if !ok {
			errs = append(errs, &UndefinedLabelError{baseDiag{filename, rec.Line}, rec.PendingLabel})
			rec.PendingLabel = ""
			continue
		}

		switch rec.Class {
		case tisa.ClassBRA:
			disp := int64(off) - int64(rec.PC)
			if disp < tisa.MinImmBRA || disp > tisa.MaxImmBRA {
				errs = append(errs, &DisplacementOutOfRangeError{baseDiag{filename, rec.Line}, rec.PendingLabel, "branch"})
				rec.PendingLabel = ""
				continue
			}
			rec.Word = tisa.SetIMM8(rec.Word, int32(disp))

		default:
			if int64(off) < tisa.MinImmAMI || int64(off) > tisa.MaxImmAMI {
				errs = append(errs, &DisplacementOutOfRangeError{baseDiag{filename, rec.Line}, rec.PendingLabel, "ami"})
				rec.PendingLabel = ""
				continue
			}
			rec.Word = tisa.SetIMM5(rec.Word, int32(off))
		}

		rec.PendingLabel = ""
	}

	return errs
}
