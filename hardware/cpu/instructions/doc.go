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

// Package instructions defines the instructions of the 6502-family CPU.
// It is a data-only package: the table returned by GetDefinitions() maps
// every opcode byte to the definition used by the cpu package to decode
// and execute the instruction.
//
// Naming conventions for the mnemonics are from
// https://www.masswerk.at/6502/6502_instruction_set.html
package instructions
