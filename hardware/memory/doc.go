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

// Package memory implements the fixed-capacity, byte-addressable memory
// areas used by the CPU. The CPU owns two disjoint areas: working RAM
// (addressed by zero-page operands) and program ROM (addressed by the
// program counter). They are logically distinct address spaces, not
// regions of a unified 64KB bus; address-range routing would be a new,
// separate responsibility layered on top of the cpubus interface.
package memory
