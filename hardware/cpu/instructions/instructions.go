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

package instructions

import "fmt"

// AddressingMode describes the method by which an instruction receives
// the data it operates on.
type AddressingMode int

// List of 6502 addressing modes. Only Implied, Immediate, Relative and
// ZeroPage are exercised by the implemented instruction set but the
// enumeration is complete so that extending the opcode table is an
// additive change.
const (
	Implied AddressingMode = iota
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// Operator identifies the operation performed by an instruction,
// independently of the addressing mode it was decoded with.
type Operator int

// List of implemented operators.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Brk
	Clc
	Cld
	Cli
	Clv
	Dex
	Dey
	Inc
	Inx
	Iny
	Lda
	Ldx
	Ldy
	Sec
	Sed
	Sei
	Sta
	Tax
	Tay
	Txa
	Tya
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow consists of the branch instructions. they have a variable
	// effect on the program counter, depending on the instruction's
	// precise operand.
	Flow

	Interrupt
)

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	Bytes          int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes [mode=%d effect=%d]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}
