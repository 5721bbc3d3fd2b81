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

package cpu

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/lazyelk/famicore/curated"
	"github.com/lazyelk/famicore/hardware/cpu/execution"
	"github.com/lazyelk/famicore/hardware/cpu/instructions"
	"github.com/lazyelk/famicore/hardware/cpu/registers"
	"github.com/lazyelk/famicore/hardware/memory"
	"github.com/lazyelk/famicore/hardware/memory/cpubus"
	"github.com/lazyelk/famicore/logger"
)

// Memory capacities of the two regions owned by the CPU. Working RAM is
// the 2KB found in the console. The ROM capacity is not the size of a
// real cartridge image, it is simply large enough for the program streams
// we currently run.
const (
	WRAMSize = 0x0800
	ROMSize  = 0x0f00
)

// Register values on reset.
const (
	resetPC = 0x0000
	resetSP = 0xfd
)

// Error patterns for the cpu package. To be used in conjunction with the
// curated package.
const (
	// IllegalOpcode is returned by Tick() when the fetched opcode byte
	// has no recognised mapping in the instruction table.
	IllegalOpcode = "cpu: illegal opcode (0x%02x)"

	// UnimplementedInstruction is returned by Tick() for instructions
	// that are recognised but have no defined semantics yet (BRK).
	UnimplementedInstruction = "cpu: unimplemented instruction (%s)"
)

// CPU implements the 6502-family CPU found in the NES. Register logic is
// implemented by the types in the registers sub-package.
//
// Registers, status flags and both memory regions are owned exclusively
// by the CPU instance. Nothing is shared between instances, which keeps
// the whole aggregate copyable for snapshotting.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// working RAM, addressed by zero-page operands. allocated fresh at
	// construction
	WRAM cpubus.Memory

	// program ROM, addressed by the program counter. supplied at
	// construction
	ROM cpubus.Memory

	// scratch register for read-modify-write operations on memory
	acc8 registers.Register

	instructions []*instructions.Definition

	// last result. the field is reset at the start of every call to
	// Tick() and finalised at the end of it
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The supplied memory instance is the program ROM; a fresh, zeroed
// working RAM instance is allocated internally.
func NewCPU(rom cpubus.Memory) *CPU {
	mc := &CPU{
		WRAM:         memory.NewMemory(WRAMSize),
		ROM:          rom,
		PC:           registers.NewProgramCounter(resetPC),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(resetSP, "SP"),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
	return mc
}

// Snapshot creates a copy of the CPU in its current state. Note that the
// memory regions are not deep-copied; use Plumb() to attach snapshotted
// memory to the new instance.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb new memory regions into the CPU.
func (mc *CPU) Plumb(wram cpubus.Memory, rom cpubus.Memory) {
	mc.WRAM = wram
	mc.ROM = rom
}

// Reset the CPU to its initial state: zeroed data registers, stack
// pointer at its conventional power-on value, program counter at the
// start of the program stream and status flags in the reset state
// described by the registers package.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(resetPC)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.Reset()
	logger.Log("cpu", "reset")
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Visualise writes a graphviz representation of the CPU aggregate to the
// io.Writer. Intended as a debugging aid during development.
func (mc *CPU) Visualise(output io.Writer) {
	memviz.Map(output, mc)
}

// fetch reads one byte from the program stream and advances the program
// counter by one.
func (mc *CPU) fetch() (uint8, error) {
	d, err := mc.ROM.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return d, nil
}

// decode maps an opcode byte to its instruction definition and fetches
// the operand byte for instructions that carry one. Fetching the operand
// advances the program counter as a side effect; decode therefore
// consumes exactly the bytes the 6502 encoding for the opcode consumes.
//
// Opcodes with no recognised mapping decode to a nil definition. Error
// reporting for those is deferred to execution time, keeping decode total.
func (mc *CPU) decode(opcode uint8) (*instructions.Definition, uint8, error) {
	defn := mc.instructions[opcode]
	if defn == nil {
		return nil, 0, nil
	}

	var operand uint8
	if defn.Bytes == 2 {
		var err error
		operand, err = mc.fetch()
		if err != nil {
			return nil, 0, err
		}
		mc.LastResult.Operand = operand
	}

	return defn, operand, nil
}

// execute applies the full documented effect of a decoded instruction:
// reads/writes of the memory regions, mutation of the data registers,
// status flag updates and, for branches, redirection of the program
// counter.
func (mc *CPU) execute(defn *instructions.Definition, operand uint8) error {
	if defn == nil {
		return curated.Errorf(IllegalOpcode, mc.LastResult.OpCode)
	}

	switch defn.Operator {
	case instructions.Brk:
		// interrupt handling requires a designed state machine (vector
		// fetch, status push, interrupt-disable set) before BRK can be
		// implemented. fail loudly rather than silently no-op
		return curated.Errorf(UnimplementedInstruction, defn.Mnemonic)

	case instructions.Asl:
		d, err := mc.WRAM.Read(uint16(operand))
		if err != nil {
			return err
		}
		mc.acc8.Load(d)
		mc.Status.Carry = mc.acc8.ASL()
		mc.Status.SetZN(mc.acc8.Value())
		err = mc.WRAM.Write(uint16(operand), mc.acc8.Value())
		if err != nil {
			return err
		}

	case instructions.And:
		d, err := mc.WRAM.Read(uint16(operand))
		if err != nil {
			return err
		}
		mc.A.AND(d)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Adc:
		d, err := mc.WRAM.Read(uint16(operand))
		if err != nil {
			return err
		}
		// note that this is not the full 6502 ADC: there is no carry-in
		// and the overflow flag is not computed. carry is set from the 8
		// bit wraparound alone
		carry, _ := mc.A.Add(d, false)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = carry

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Dex:
		mc.X.Subtract(1, true)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Subtract(1, true)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Inc:
		d, err := mc.WRAM.Read(uint16(operand))
		if err != nil {
			return err
		}
		mc.acc8.Load(d)
		mc.acc8.Add(1, false)
		err = mc.WRAM.Write(uint16(operand), mc.acc8.Value())
		if err != nil {
			return err
		}
		mc.Status.SetZN(mc.acc8.Value())

	case instructions.Lda:
		// LDA is the only instruction currently decoded with immediate
		// addressing. the operand is the value itself
		mc.A.Load(operand)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ldx:
		d, err := mc.WRAM.Read(uint16(operand))
		if err != nil {
			return err
		}
		mc.X.Load(d)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ldy:
		d, err := mc.WRAM.Read(uint16(operand))
		if err != nil {
			return err
		}
		mc.Y.Load(d)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Sta:
		err := mc.WRAM.Write(uint16(operand), mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Bcc:
		// the branch is taken when the carry flag is set. this is the
		// inverse of what the BCC mnemonic suggests but it is the
		// behaviour the rest of the system has been built against. see
		// DESIGN.md for the full discussion
		if mc.Status.Carry {
			mc.PC.AddOffset(operand)
			mc.LastResult.BranchTaken = true
		}

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Nop:
		// does nothing (on purpose)

	default:
		return curated.Errorf("cpu: unhandled operator for opcode (%#02x)", defn.OpCode)
	}

	return nil
}

// Tick steps the CPU forward by exactly one instruction: one fetch from
// the program stream, one decode (which may advance the program counter
// further if the opcode has an operand) and one execute.
//
// Any error is fatal to the run: there is no local recovery or retry
// anywhere in the CPU. A caller wishing to bound execution should stop
// calling Tick(), or use Run() with a continueCheck function.
func (mc *CPU) Tick() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.LastResult.OpCode = opcode

	defn, operand, err := mc.decode(opcode)
	if err != nil {
		return err
	}
	mc.LastResult.Defn = defn

	err = mc.execute(defn, operand)
	if err != nil {
		return err
	}

	mc.LastResult.Final = true

	return nil
}

// Run drives the CPU as quickly as possible. The continueCheck function
// is called after every instruction; returning false ends the run
// cleanly. Instruction budgets, breakpoints and the like are caller-side
// policy expressed through continueCheck.
func (mc *CPU) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		err := mc.Tick()
		if err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
