// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"fmt"
	"strings"

	"github.com/lazyelk/famicore/hardware/cpu/instructions"
)

// Result records the most recent instruction executed by the CPU. It is
// exposed to the caller through the CPU's LastResult field, for use by
// tests and any future debugger front-end.
type Result struct {
	// the address in the program stream the instruction was fetched from
	Address uint16

	// a reference to the instruction definition. nil if the opcode has no
	// recognised mapping
	Defn *instructions.Definition

	// the raw opcode byte. useful when Defn is nil
	OpCode uint8

	// the operand byte, if the instruction carries one
	Operand uint8

	// total number of bytes read from the program stream for this
	// instruction (opcode plus operand bytes)
	ByteCount int

	// whether the instruction took its branch. only meaningful for
	// instructions where Defn.IsBranch() is true
	BranchTaken bool

	// whether this record has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.OpCode = 0
	r.Operand = 0
	r.ByteCount = 0
	r.BranchTaken = false
	r.Final = false
}

// String returns a disassembly-like rendering of the result.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ??? (%#02x)", r.Address, r.OpCode)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x %s", r.Address, r.Defn.Mnemonic))

	if r.Defn.Bytes == 2 {
		switch r.Defn.AddressingMode {
		case instructions.Immediate:
			s.WriteString(fmt.Sprintf(" #$%02x", r.Operand))
		default:
			s.WriteString(fmt.Sprintf(" $%02x", r.Operand))
		}
	}

	return s.String()
}
