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

package instructions_test

import (
	"testing"

	"github.com/lazyelk/famicore/hardware/cpu/instructions"
	"github.com/lazyelk/famicore/test"
)

func TestDefinitionTable(t *testing.T) {
	table := instructions.GetDefinitions()
	test.Equate(t, len(table), 256)

	mapped := 0
	for op, defn := range table {
		if defn == nil {
			continue
		}
		mapped++

		test.Equate(t, defn.OpCode, op)

		// byte count must match what the addressing mode consumes from
		// the program stream
		switch defn.AddressingMode {
		case instructions.Implied:
			test.Equate(t, defn.Bytes, 1)
		case instructions.Immediate, instructions.ZeroPage, instructions.Relative:
			test.Equate(t, defn.Bytes, 2)
		default:
			t.Errorf("unexpected addressing mode in table (%s)", defn)
		}

		if defn.Mnemonic == "" {
			t.Errorf("empty mnemonic for opcode %#02x", op)
		}
	}

	test.Equate(t, mapped, 26)
}

func TestDefinitionBranches(t *testing.T) {
	table := instructions.GetDefinitions()

	for _, defn := range table {
		if defn == nil {
			continue
		}
		test.Equate(t, defn.IsBranch(), defn.Mnemonic == "BCC")
	}
}
