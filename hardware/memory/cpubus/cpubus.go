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

// Package cpubus defines the operations for a memory area when accessed
// from the CPU.
package cpubus

// Memory defines the operations for a memory area when accessed from the
// CPU. Both memory regions owned by the CPU (working RAM and the program
// ROM) implement this interface, as would any future unified bus routing
// reads and writes to peripherals.
//
// An address outside of the range of the memory area is the
// implementation's error to define. The CPU treats any error from a
// memory area as fatal to the current instruction.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}
