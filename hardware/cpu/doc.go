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

// Package cpu implements the 6502-family CPU found in the NES. The CPU
// is driven with the Tick() function, which executes exactly one
// instruction: one fetch from the program stream, one decode and one
// execute. The emulation counts instructions, not clock cycles.
//
// The CPU owns its registers, status flags and two disjoint memory
// regions: working RAM (addressed by zero-page operands) and program ROM
// (addressed by the program counter). A single Tick() runs to completion
// before returning; there are no suspension points and no shared mutable
// state between separate CPU instances. If interrupt handling is added
// it must be cooperative, honoured only at instruction boundaries.
//
// Every failure reachable from Tick() is a programming or data error,
// never a transient condition: an illegal opcode, the unimplemented BRK
// instruction or a memory access outside of a region's capacity. Errors
// propagate immediately and unconditionally; there is no retry.
package cpu
