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

package memory

import (
	"fmt"
	"strings"

	"github.com/lazyelk/famicore/curated"
	"github.com/lazyelk/famicore/logger"
)

// Error patterns for the memory package. To be used in conjunction with
// the curated package.
const (
	// AddressError is returned by Read() and Write() when the address is
	// outside of the memory area.
	AddressError = "memory: address out of range (%#04x)"

	// ProgramTooLarge is returned by NewMemoryWithProgram() when the
	// program does not fit in the requested capacity.
	ProgramTooLarge = "memory: program of %d bytes exceeds capacity of %d bytes"
)

// Memory is a fixed-capacity, byte-addressable memory area. One instance
// backs the CPU's working RAM and another the program ROM.
type Memory struct {
	memory []uint8
}

// NewMemory creates a zero-filled memory area of the given capacity.
func NewMemory(capacity int) *Memory {
	return &Memory{
		memory: make([]uint8, capacity),
	}
}

// NewMemoryWithProgram creates a memory area of the given capacity with
// the program bytes pre-loaded into the low addresses. Bytes beyond the
// program are zero-filled. A program longer than the capacity is an
// error, not a truncation.
func NewMemoryWithProgram(program []uint8, capacity int) (*Memory, error) {
	if len(program) > capacity {
		return nil, curated.Errorf(ProgramTooLarge, len(program), capacity)
	}

	mem := NewMemory(capacity)
	copy(mem.memory, program)

	logger.Logf("memory", "%d byte program loaded (%d byte capacity)", len(program), capacity)

	return mem, nil
}

// Snapshot creates a copy of the memory area in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.memory = make([]uint8, len(mem.memory))
	copy(n.memory, mem.memory)
	return &n
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= len(mem.memory) {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.memory[address], nil
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= len(mem.memory) {
		return curated.Errorf(AddressError, address)
	}
	mem.memory[address] = data
	return nil
}

func (mem Memory) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      -- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(mem.memory)/16; y++ {
		s.WriteString(fmt.Sprintf("%03X- |", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
