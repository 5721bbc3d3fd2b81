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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	assert.Assert(t, r8, 0)

	// loading & addition
	r8.Load(127)
	assert.Assert(t, r8, 127)
	r8.Add(2, false)
	assert.Assert(t, r8, 129)

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	assert.Assert(t, r8, 0)

	// addition boundary with carry
	r8.Load(254)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	assert.Assert(t, r8, 0)

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), false)
	assert.Assert(t, r8, 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	assert.Assert(t, r8, 10)

	r8.Load(12)
	r8.Subtract(1, false)
	assert.Assert(t, r8, 10)

	// subtraction boundary
	r8.Load(0)
	r8.Subtract(1, true)
	assert.Assert(t, r8, 255)
	r8.Load(1)
	r8.Subtract(1, false)
	assert.Assert(t, r8, 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	assert.Assert(t, r8, 0x01)
	r8.EOR(0xFF)
	assert.Assert(t, r8, 0xFE)
	r8.ORA(0x1)
	assert.Assert(t, r8, 0xFF)

	// shifts
	carry = r8.ASL()
	assert.Assert(t, r8, 0xFE)
	test.Equate(t, carry, true)
	carry = r8.LSR()
	assert.Assert(t, r8, 0x7F)
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)
}

func TestRegisterAddress(t *testing.T) {
	r8 := registers.NewRegister(0xfd, "SP")
	test.Equate(t, r8.Address(), 0x00fd)
	test.Equate(t, r8.Label(), "SP")
}
