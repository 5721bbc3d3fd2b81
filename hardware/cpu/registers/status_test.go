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

package registers_test

import (
	"testing"

	"github.com/lazyelk/famicore/hardware/cpu/registers"
	"github.com/lazyelk/famicore/hardware/cpu/registers/assert"
	"github.com/lazyelk/famicore/test"
)

func TestStatusRegisterReset(t *testing.T) {
	// power-on state is interrupt disable set and everything else clear
	sr := registers.NewStatusRegister()
	assert.Assert(t, sr, "sv-bdIzc")

	// the unused bit always reads 1 in the packed form
	test.Equate(t, sr.Value(), 0x24)
}

func TestStatusRegisterSetZN(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.SetZN(0x00)
	assert.Assert(t, sr, "sv-bdIZc")

	sr.SetZN(0x80)
	assert.Assert(t, sr, "Sv-bdIzc")

	sr.SetZN(0x01)
	assert.Assert(t, sr, "sv-bdIzc")

	// SetZN must not disturb any other flag
	sr.Carry = true
	sr.Overflow = true
	sr.DecimalMode = true
	sr.SetZN(0xff)
	assert.Assert(t, sr, "SV-bDIzC")
}

func TestStatusRegisterValue(t *testing.T) {
	sr := registers.NewStatusRegister()

	// round-trip through the packed representation
	sr.FromValue(0xc3)
	assert.Assert(t, sr, "SV-bdiZC")
	test.Equate(t, sr.Value(), 0xe3)

	sr.FromValue(0x00)
	assert.Assert(t, sr, "sv-bdizc")
	test.Equate(t, sr.Value(), 0x20)

	test.Equate(t, sr.Label(), "SR")
	test.Equate(t, sr.String(), "sv-bdizc")
}
