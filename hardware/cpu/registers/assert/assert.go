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

// Package assert is used to test equality between register values and
// simple Go types. The most useful comparison is between the
// StatusRegister type and a string of the form "sv-bdizc"; a capital
// letter meaning the flag is set and a lower-case letter meaning it is
// clear.
package assert

import (
	"reflect"
	"testing"

	"github.com/lazyelk/famicore/hardware/cpu/registers"
)

// Assert is used to test equality between one value and another.
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()
	switch r := r.(type) {

	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register failed (%d  - wanted %d)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%d  - wanted %d)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StatusRegister failed (%d  - wanted %d)", r.Value(), x)
			}

		case string:
			if len(x) != 8 {
				t.Errorf("assert StatusRegister failed (status flags must be an integer or a string of 8 chars)")
				return
			}
			if x[0] != 's' && !r.Sign || x[0] != 'S' && r.Sign {
				t.Errorf("assert StatusRegister failed (unexpected sign flag) [%s]", r)
			}
			if x[1] != 'v' && !r.Overflow || x[1] != 'V' && r.Overflow {
				t.Errorf("assert StatusRegister failed (unexpected overflow flag) [%s]", r)
			}
			if x[3] != 'b' && !r.Break || x[3] != 'B' && r.Break {
				t.Errorf("assert StatusRegister failed (unexpected break flag) [%s]", r)
			}
			if x[4] != 'd' && !r.DecimalMode || x[4] != 'D' && r.DecimalMode {
				t.Errorf("assert StatusRegister failed (unexpected decimal mode flag) [%s]", r)
			}
			if x[5] != 'i' && !r.InterruptDisable || x[5] != 'I' && r.InterruptDisable {
				t.Errorf("assert StatusRegister failed (unexpected interrupt disable flag) [%s]", r)
			}
			if x[6] != 'z' && !r.Zero || x[6] != 'Z' && r.Zero {
				t.Errorf("assert StatusRegister failed (unexpected zero flag) [%s]", r)
			}
			if x[7] != 'c' && !r.Carry || x[7] != 'C' && r.Carry {
				t.Errorf("assert StatusRegister failed (unexpected carry flag) [%s]", r)
			}
		}

	case uint8:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint8 failed (%d  - wanted %d)", r, x)
			}
		}

	case uint16:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint16 failed (%d  - wanted %d)", r, x)
			}
		}

	case string:
		if r != x.(string) {
			t.Errorf("assert string failed (%v  - wanted %v)", r, x.(string))
		}

	case bool:
		if r != x.(bool) {
			t.Errorf("assert bool failed (%v  - wanted %v)", r, x.(bool))
		}

	case int:
		if r != x.(int) {
			t.Errorf("assert int failed (%d  - wanted %d)", r, x.(int))
		}
	}
}
