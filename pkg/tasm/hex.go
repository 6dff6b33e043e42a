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
	"fmt"
	"io"
)

// WriteHex emits the Tangle hex image: a leading "// <name> file"
// comment followed by one four-lowercase-hex-digit line per instruction
// record, in program order.
func WriteHex(w io.Writer, name string, records []Record) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "// %s file\n", name); err != nil {
		return err
	}

	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%04x\n", rec.Word); err != nil {
			return err
		}
	}

	return bw.Flush()
}
