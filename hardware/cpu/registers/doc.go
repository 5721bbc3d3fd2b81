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

// Package registers implements the three types of registers found in the
// 6502-family CPU. The three types are: the program counter, the status
// register and the 8 bit register type used for the accumulator, X, Y and
// the stack pointer.
//
// The 8 bit registers, implemented as the Register type, define the basic
// operations required by the implemented instruction set: load, add,
// subtract, logical operations and shifts. In addition the type
// implements the tests required for status updates: is the value zero, is
// the value negative.
//
// The program counter by comparison is 16 bits wide and defines the load
// and add operations, plus a sign-extending add for relative branches.
//
// The status register is implemented as a series of flags. Setting of
// flags is done directly, except for the very common zero/sign pairing
// which is serviced by the SetZN() function:
//
//	a.Load(10)
//	a.Subtract(10, false)
//	sr.SetZN(a.Value())
//
// In this case, the zero flag in the status register will be true and
// the sign flag false.
package registers
