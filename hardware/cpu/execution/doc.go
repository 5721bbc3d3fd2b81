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

// Package execution tracks the result of instruction execution on the
// CPU. The Result type stores the address, definition and operand of the
// most recently executed instruction along with the number of bytes it
// consumed from the program stream.
//
// The IsValid() function checks a Result instance against the
// instruction's definition. It is intended to be used during testing to
// make sure the implementation hasn't gone off the rails.
package execution
