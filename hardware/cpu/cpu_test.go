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

package cpu_test

import (
	"testing"

	"github.com/lazyelk/famicore/curated"
	"github.com/lazyelk/famicore/hardware/cpu"
	"github.com/lazyelk/famicore/hardware/cpu/instructions"
	"github.com/lazyelk/famicore/hardware/cpu/registers/assert"
	"github.com/lazyelk/famicore/hardware/memory"
	"github.com/lazyelk/famicore/hardware/memory/cpubus"
	"github.com/lazyelk/famicore/test"
)

// program creates a CPU with the given bytes pre-loaded as the program
// stream.
func program(t *testing.T, bytes ...uint8) *cpu.CPU {
	t.Helper()
	rom, err := memory.NewMemoryWithProgram(bytes, cpu.ROMSize)
	if err != nil {
		t.Fatal(err)
	}
	return cpu.NewCPU(rom)
}

// step executes one instruction and checks the result for internal
// consistency.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.Tick(); err != nil {
		t.Fatal(err)
	}
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatal(err)
	}
}

func poke(t *testing.T, mem cpubus.Memory, address uint16, value uint8) {
	t.Helper()
	if err := mem.Write(address, value); err != nil {
		t.Fatal(err)
	}
}

func peek(t *testing.T, mem cpubus.Memory, address uint16) uint8 {
	t.Helper()
	d, err := mem.Read(address)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestResetState(t *testing.T) {
	mc := program(t, 0xea)
	assert.Assert(t, mc.A, 0)
	assert.Assert(t, mc.X, 0)
	assert.Assert(t, mc.Y, 0)
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.PC, 0)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestStatusInstructions(t *testing.T) {
	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mc := program(t, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)

	step(t, mc) // SEC
	assert.Assert(t, mc.Status, "sv-bdIzC")
	step(t, mc) // CLC
	assert.Assert(t, mc.Status, "sv-bdIzc")
	step(t, mc) // CLI
	assert.Assert(t, mc.Status, "sv-bdizc")
	step(t, mc) // SEI
	assert.Assert(t, mc.Status, "sv-bdIzc")
	step(t, mc) // SED
	assert.Assert(t, mc.Status, "sv-bDIzc")
	step(t, mc) // CLD
	assert.Assert(t, mc.Status, "sv-bdIzc")

	// CLV is the only way to clear the overflow flag. set it directly
	// before executing
	mc.Status.Overflow = true
	step(t, mc) // CLV
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestASL(t *testing.T) {
	mc := program(t, 0x06, 0x20)
	poke(t, mc.WRAM, 0x20, 0b00000001)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0b00000010)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestASLZeroFlag(t *testing.T) {
	mc := program(t, 0x06, 0x20)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestASLNegativeFlag(t *testing.T) {
	// multiplies by two
	mc := program(t, 0x06, 0x20)
	poke(t, mc.WRAM, 0x20, 0x40)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
}

func TestASLCarryFlag(t *testing.T) {
	mc := program(t, 0x06, 0x20)
	poke(t, mc.WRAM, 0x20, 0b10000000)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZC")
}

func TestAND(t *testing.T) {
	mc := program(t, 0x25, 0x20)
	poke(t, mc.WRAM, 0x20, 0b1010)
	mc.A.Load(0b1111)
	step(t, mc)
	assert.Assert(t, mc.A, 0b1010)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestANDZeroFlag(t *testing.T) {
	mc := program(t, 0x25, 0x00)
	mc.A.Load(0)
	step(t, mc)
	assert.Assert(t, mc.A, 0)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestANDNegativeFlag(t *testing.T) {
	mc := program(t, 0x25, 0x20)
	poke(t, mc.WRAM, 0x20, 0xff)
	mc.A.Load(0x80)
	step(t, mc)
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
}

func TestADC(t *testing.T) {
	mc := program(t, 0x65, 0x20)
	poke(t, mc.WRAM, 0x20, 0x40)
	mc.A.Load(0x04)
	step(t, mc)
	assert.Assert(t, mc.A, 0x44)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestADCCarryFlag(t *testing.T) {
	// addition wraps modulo 256 and the wraparound sets the carry flag
	mc := program(t, 0x65, 0x20)
	poke(t, mc.WRAM, 0x20, 0x01)
	mc.A.Load(0xff)
	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZC")
}

func TestLDAImmediate(t *testing.T) {
	mc := program(t, 0xa9, 0x40)
	step(t, mc)
	assert.Assert(t, mc.A, 0x40)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestLDAZeroFlag(t *testing.T) {
	mc := program(t, 0xa9, 0x00)
	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestLDANegativeFlag(t *testing.T) {
	mc := program(t, 0xa9, 0x80)
	step(t, mc)
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
}

func TestLDX(t *testing.T) {
	mc := program(t, 0xa6, 0x20)
	poke(t, mc.WRAM, 0x20, 0x40)
	step(t, mc)
	assert.Assert(t, mc.X, 0x40)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestLDY(t *testing.T) {
	mc := program(t, 0xa4, 0x20)
	poke(t, mc.WRAM, 0x20, 0x80)
	step(t, mc)
	assert.Assert(t, mc.Y, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
}

func TestSTA(t *testing.T) {
	// LDA #$42; STA $20
	mc := program(t, 0xa9, 0x42, 0x85, 0x20)
	step(t, mc)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0x42)

	// STA has no flag effect
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestTransfers(t *testing.T) {
	// LDA #$80; TAX; TAY; TXA; TYA
	mc := program(t, 0xa9, 0x80, 0xaa, 0xa8, 0x8a, 0x98)

	step(t, mc) // LDA
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")

	step(t, mc) // TAX
	assert.Assert(t, mc.X, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")

	step(t, mc) // TAY
	assert.Assert(t, mc.Y, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")

	step(t, mc) // TXA
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")

	step(t, mc) // TYA
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
}

func TestTransferZeroFlag(t *testing.T) {
	// transfers update Z/N from the destination register
	mc := program(t, 0xaa)
	step(t, mc)
	assert.Assert(t, mc.X, 0)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestINXWraparound(t *testing.T) {
	mc := program(t, 0xe8, 0xe8)
	mc.X.Load(0xfe)
	step(t, mc)
	assert.Assert(t, mc.X, 0xff)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
	step(t, mc)
	assert.Assert(t, mc.X, 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestINY(t *testing.T) {
	mc := program(t, 0xc8)
	step(t, mc)
	assert.Assert(t, mc.Y, 1)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestDEXWraparound(t *testing.T) {
	mc := program(t, 0xca)
	step(t, mc)
	assert.Assert(t, mc.X, 0xff)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
}

func TestDEY(t *testing.T) {
	mc := program(t, 0x88)
	mc.Y.Load(1)
	step(t, mc)
	assert.Assert(t, mc.Y, 0)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestINC(t *testing.T) {
	mc := program(t, 0xe6, 0x20)
	poke(t, mc.WRAM, 0x20, 0x41)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0x42)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestINCWraparound(t *testing.T) {
	mc := program(t, 0xe6, 0x20)
	poke(t, mc.WRAM, 0x20, 0xff)
	step(t, mc)
	test.Equate(t, peek(t, mc.WRAM, 0x20), 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZc")
}

func TestNOP(t *testing.T) {
	mc := program(t, 0xea)
	step(t, mc)
	assert.Assert(t, mc.PC, 1)
	assert.Assert(t, mc.A, 0)
	assert.Assert(t, mc.X, 0)
	assert.Assert(t, mc.Y, 0)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestBranchTaken(t *testing.T) {
	// SEC; BCC +0; INX
	//
	// the branch in this CPU is taken when the carry flag is set. with a
	// zero offset the program counter lands exactly on the following
	// instruction
	mc := program(t, 0x38, 0x90, 0x00, 0xe8)

	step(t, mc) // SEC
	step(t, mc) // BCC +0
	assert.Assert(t, mc.PC, 3)
	test.Equate(t, mc.LastResult.BranchTaken, true)

	step(t, mc) // INX
	assert.Assert(t, mc.X, 1)
}

func TestBranchNotTaken(t *testing.T) {
	// BCC +2; INX; ...
	//
	// with the carry flag clear the branch is not taken and the next two
	// bytes are fetched as the following instruction
	mc := program(t, 0x90, 0x02, 0xe8)

	step(t, mc) // BCC (not taken)
	assert.Assert(t, mc.PC, 2)
	test.Equate(t, mc.LastResult.BranchTaken, false)

	step(t, mc) // INX
	assert.Assert(t, mc.X, 1)
	assert.Assert(t, mc.PC, 3)
}

func TestBranchForward(t *testing.T) {
	// SEC; BCC +1; DEX (skipped); INX
	mc := program(t, 0x38, 0x90, 0x01, 0xca, 0xe8)

	step(t, mc) // SEC
	step(t, mc) // BCC +1
	assert.Assert(t, mc.PC, 4)

	step(t, mc) // INX
	assert.Assert(t, mc.X, 1)
}

func TestBranchBackward(t *testing.T) {
	// INX; SEC; BCC -4
	//
	// the offset is sign-extended so the branch target is the INX at the
	// start of the program
	mc := program(t, 0xe8, 0x38, 0x90, 0xfc)

	step(t, mc) // INX
	step(t, mc) // SEC
	step(t, mc) // BCC -4
	assert.Assert(t, mc.PC, 0)

	step(t, mc) // INX again
	assert.Assert(t, mc.X, 2)
}

func TestIllegalOpcode(t *testing.T) {
	mc := program(t, 0x02)
	err := mc.Tick()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cpu.IllegalOpcode), true)

	// the error reports the exact offending byte
	test.Equate(t, err.Error(), "cpu: illegal opcode (0x02)")

	// the result of a failed tick is not finalised
	test.ExpectedFailure(t, mc.LastResult.Final)
}

func TestIllegalOpcodeDeterministic(t *testing.T) {
	// identical program input produces an identical failure on every run
	first := program(t, 0xea, 0x42)
	second := program(t, 0xea, 0x42)

	step(t, first)
	step(t, second)

	errFirst := first.Tick()
	errSecond := second.Tick()
	test.ExpectedFailure(t, errFirst)
	test.ExpectedFailure(t, errSecond)
	test.Equate(t, errFirst.Error(), errSecond.Error())
	test.Equate(t, errFirst.Error(), "cpu: illegal opcode (0x42)")
}

func TestBRK(t *testing.T) {
	mc := program(t, 0x00)
	err := mc.Tick()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cpu.UnimplementedInstruction), true)
}

func TestByteConsumption(t *testing.T) {
	// executing any mapped opcode never reads more program-stream bytes
	// than the instruction's table entry declares
	for op, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}
		if defn.Operator == instructions.Brk {
			continue
		}

		mc := program(t, uint8(op), 0x00, 0x00)
		step(t, mc)
		test.Equate(t, mc.LastResult.ByteCount, defn.Bytes)
		assert.Assert(t, mc.PC, defn.Bytes)
	}
}

func TestProgramStreamExhausted(t *testing.T) {
	// a program counter past the end of the ROM is surfaced as the
	// memory collaborator's address error
	rom := memory.NewMemory(1)
	poke(t, rom, 0x00, 0xea)
	mc := cpu.NewCPU(rom)

	step(t, mc) // NOP

	err := mc.Tick()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.AddressError), true)
}

func TestRunWithBudget(t *testing.T) {
	mc := program(t, 0xe8, 0xe8, 0xe8, 0xe8, 0xe8, 0xe8)

	// an instruction budget is caller-side policy expressed through the
	// continueCheck function
	budget := 4
	err := mc.Run(func() (bool, error) {
		budget--
		return budget > 0, nil
	})
	test.ExpectedSuccess(t, err)
	assert.Assert(t, mc.X, 4)
}

func TestRunStopsOnError(t *testing.T) {
	mc := program(t, 0xea, 0x02)
	err := mc.Run(nil)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cpu.IllegalOpcode), true)
}

func TestReset(t *testing.T) {
	mc := program(t, 0xa9, 0x80, 0xaa)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.X, 0x80)

	mc.Reset()
	assert.Assert(t, mc.A, 0)
	assert.Assert(t, mc.X, 0)
	assert.Assert(t, mc.PC, 0)
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.Status, "sv-bdIzc")

	// the program stream is untouched by a reset
	step(t, mc)
	assert.Assert(t, mc.A, 0x80)
}

func TestSnapshot(t *testing.T) {
	mc := program(t, 0xa9, 0x42, 0x85, 0x20, 0xe8)
	step(t, mc)
	step(t, mc)

	snap := mc.Snapshot()
	snap.Plumb(mc.WRAM.(*memory.Memory).Snapshot(), mc.ROM)

	// advancing the original does not affect the snapshot
	step(t, mc)
	poke(t, mc.WRAM, 0x20, 0xff)

	assert.Assert(t, snap.PC, 4)
	assert.Assert(t, snap.X, 0)
	test.Equate(t, peek(t, snap.WRAM, 0x20), 0x42)
	assert.Assert(t, mc.X, 1)
}
