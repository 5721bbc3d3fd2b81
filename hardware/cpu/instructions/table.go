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

// The list of implemented instructions. Byte counts must match what the
// real 6502 encoding for the opcode consumes: 1 for implied/register
// operations, 2 for operations with one zero-page/immediate/relative
// operand.
//
// Note that BCC is decoded as on the real CPU but the branch condition
// implemented by the execution engine is taken when the carry flag is
// set. See the commentary in the cpu package.
var definitions = []Definition{
	{OpCode: 0x00, Operator: Brk, Mnemonic: "BRK", Bytes: 1, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x06, Operator: Asl, Mnemonic: "ASL", Bytes: 2, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x18, Operator: Clc, Mnemonic: "CLC", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x25, Operator: And, Mnemonic: "AND", Bytes: 2, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x38, Operator: Sec, Mnemonic: "SEC", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x58, Operator: Cli, Mnemonic: "CLI", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x65, Operator: Adc, Mnemonic: "ADC", Bytes: 2, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x78, Operator: Sei, Mnemonic: "SEI", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x85, Operator: Sta, Mnemonic: "STA", Bytes: 2, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x88, Operator: Dey, Mnemonic: "DEY", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, Mnemonic: "TXA", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x90, Operator: Bcc, Mnemonic: "BCC", Bytes: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x98, Operator: Tya, Mnemonic: "TYA", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, Mnemonic: "LDY", Bytes: 2, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, Mnemonic: "LDX", Bytes: 2, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, Mnemonic: "TAY", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, Mnemonic: "LDA", Bytes: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, Mnemonic: "TAX", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, Mnemonic: "CLV", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc8, Operator: Iny, Mnemonic: "INY", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xca, Operator: Dex, Mnemonic: "DEX", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, Mnemonic: "CLD", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe6, Operator: Inc, Mnemonic: "INC", Bytes: 2, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xe8, Operator: Inx, Mnemonic: "INX", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xea, Operator: Nop, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf8, Operator: Sed, Mnemonic: "SED", Bytes: 1, AddressingMode: Implied, Effect: Read},
}

// GetDefinitions returns the opcode table: a list of 256 entries indexed
// by opcode. Opcodes with no recognised mapping have a nil entry and are
// reported as illegal by the CPU at execution time.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		table[definitions[i].OpCode] = &definitions[i]
	}
	return table
}
