// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// definitions for every opcode. undefined opcodes have the KIL operator and
// are one byte in length
var definitions = [256]Definition{
	0x00: {OpCode: 0x00, Operator: BRK, AddressingMode: Implied, Bytes: 2, Cycles: 7, Effect: Interrupt},
	0x01: {OpCode: 0x01, Operator: ORA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0x02: {OpCode: 0x02, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x03: {OpCode: 0x03, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x04: {OpCode: 0x04, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x05: {OpCode: 0x05, Operator: ORA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0x06: {OpCode: 0x06, Operator: ASL, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	0x07: {OpCode: 0x07, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x08: {OpCode: 0x08, Operator: PHP, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	0x09: {OpCode: 0x09, Operator: ORA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0x0a: {OpCode: 0x0a, Operator: ASL, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: RMW},
	0x0b: {OpCode: 0x0b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x0c: {OpCode: 0x0c, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x0d: {OpCode: 0x0d, Operator: ORA, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0x0e: {OpCode: 0x0e, Operator: ASL, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	0x0f: {OpCode: 0x0f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x10: {OpCode: 0x10, Operator: BPL, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0x11: {OpCode: 0x11, Operator: ORA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0x12: {OpCode: 0x12, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x13: {OpCode: 0x13, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x14: {OpCode: 0x14, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x15: {OpCode: 0x15, Operator: ORA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0x16: {OpCode: 0x16, Operator: ASL, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	0x17: {OpCode: 0x17, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x18: {OpCode: 0x18, Operator: CLC, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x19: {OpCode: 0x19, Operator: ORA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x1a: {OpCode: 0x1a, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x1b: {OpCode: 0x1b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x1c: {OpCode: 0x1c, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x1d: {OpCode: 0x1d, Operator: ORA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x1e: {OpCode: 0x1e, Operator: ASL, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	0x1f: {OpCode: 0x1f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x20: {OpCode: 0x20, Operator: JSR, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Subroutine},
	0x21: {OpCode: 0x21, Operator: AND, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0x22: {OpCode: 0x22, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x23: {OpCode: 0x23, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x24: {OpCode: 0x24, Operator: BIT, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0x25: {OpCode: 0x25, Operator: AND, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0x26: {OpCode: 0x26, Operator: ROL, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	0x27: {OpCode: 0x27, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x28: {OpCode: 0x28, Operator: PLP, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	0x29: {OpCode: 0x29, Operator: AND, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0x2a: {OpCode: 0x2a, Operator: ROL, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: RMW},
	0x2b: {OpCode: 0x2b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x2c: {OpCode: 0x2c, Operator: BIT, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0x2d: {OpCode: 0x2d, Operator: AND, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0x2e: {OpCode: 0x2e, Operator: ROL, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	0x2f: {OpCode: 0x2f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x30: {OpCode: 0x30, Operator: BMI, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0x31: {OpCode: 0x31, Operator: AND, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0x32: {OpCode: 0x32, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x33: {OpCode: 0x33, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x34: {OpCode: 0x34, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x35: {OpCode: 0x35, Operator: AND, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0x36: {OpCode: 0x36, Operator: ROL, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	0x37: {OpCode: 0x37, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x38: {OpCode: 0x38, Operator: SEC, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x39: {OpCode: 0x39, Operator: AND, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x3a: {OpCode: 0x3a, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x3b: {OpCode: 0x3b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x3c: {OpCode: 0x3c, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x3d: {OpCode: 0x3d, Operator: AND, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x3e: {OpCode: 0x3e, Operator: ROL, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	0x3f: {OpCode: 0x3f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x40: {OpCode: 0x40, Operator: RTI, AddressingMode: Implied, Bytes: 1, Cycles: 6, Effect: Interrupt},
	0x41: {OpCode: 0x41, Operator: EOR, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0x42: {OpCode: 0x42, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x43: {OpCode: 0x43, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x44: {OpCode: 0x44, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x45: {OpCode: 0x45, Operator: EOR, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0x46: {OpCode: 0x46, Operator: LSR, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	0x47: {OpCode: 0x47, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x48: {OpCode: 0x48, Operator: PHA, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	0x49: {OpCode: 0x49, Operator: EOR, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0x4a: {OpCode: 0x4a, Operator: LSR, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: RMW},
	0x4b: {OpCode: 0x4b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x4c: {OpCode: 0x4c, Operator: JMP, AddressingMode: Absolute, Bytes: 3, Cycles: 3, Effect: Flow},
	0x4d: {OpCode: 0x4d, Operator: EOR, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0x4e: {OpCode: 0x4e, Operator: LSR, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	0x4f: {OpCode: 0x4f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x50: {OpCode: 0x50, Operator: BVC, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0x51: {OpCode: 0x51, Operator: EOR, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0x52: {OpCode: 0x52, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x53: {OpCode: 0x53, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x54: {OpCode: 0x54, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x55: {OpCode: 0x55, Operator: EOR, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0x56: {OpCode: 0x56, Operator: LSR, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	0x57: {OpCode: 0x57, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x58: {OpCode: 0x58, Operator: CLI, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x59: {OpCode: 0x59, Operator: EOR, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x5a: {OpCode: 0x5a, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x5b: {OpCode: 0x5b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x5c: {OpCode: 0x5c, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x5d: {OpCode: 0x5d, Operator: EOR, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x5e: {OpCode: 0x5e, Operator: LSR, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	0x5f: {OpCode: 0x5f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x60: {OpCode: 0x60, Operator: RTS, AddressingMode: Implied, Bytes: 1, Cycles: 6, Effect: Subroutine},
	0x61: {OpCode: 0x61, Operator: ADC, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0x62: {OpCode: 0x62, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x63: {OpCode: 0x63, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x64: {OpCode: 0x64, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x65: {OpCode: 0x65, Operator: ADC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0x66: {OpCode: 0x66, Operator: ROR, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	0x67: {OpCode: 0x67, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x68: {OpCode: 0x68, Operator: PLA, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	0x69: {OpCode: 0x69, Operator: ADC, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0x6a: {OpCode: 0x6a, Operator: ROR, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: RMW},
	0x6b: {OpCode: 0x6b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x6c: {OpCode: 0x6c, Operator: JMP, AddressingMode: Indirect, Bytes: 3, Cycles: 5, Effect: Flow},
	0x6d: {OpCode: 0x6d, Operator: ADC, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0x6e: {OpCode: 0x6e, Operator: ROR, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	0x6f: {OpCode: 0x6f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x70: {OpCode: 0x70, Operator: BVS, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0x71: {OpCode: 0x71, Operator: ADC, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0x72: {OpCode: 0x72, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x73: {OpCode: 0x73, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x74: {OpCode: 0x74, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x75: {OpCode: 0x75, Operator: ADC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0x76: {OpCode: 0x76, Operator: ROR, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	0x77: {OpCode: 0x77, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x78: {OpCode: 0x78, Operator: SEI, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x79: {OpCode: 0x79, Operator: ADC, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x7a: {OpCode: 0x7a, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x7b: {OpCode: 0x7b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x7c: {OpCode: 0x7c, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x7d: {OpCode: 0x7d, Operator: ADC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0x7e: {OpCode: 0x7e, Operator: ROR, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	0x7f: {OpCode: 0x7f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x80: {OpCode: 0x80, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x81: {OpCode: 0x81, Operator: STA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Write},
	0x82: {OpCode: 0x82, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x83: {OpCode: 0x83, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x84: {OpCode: 0x84, Operator: STY, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Write},
	0x85: {OpCode: 0x85, Operator: STA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Write},
	0x86: {OpCode: 0x86, Operator: STX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Write},
	0x87: {OpCode: 0x87, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x88: {OpCode: 0x88, Operator: DEY, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x89: {OpCode: 0x89, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x8a: {OpCode: 0x8a, Operator: TXA, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x8b: {OpCode: 0x8b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x8c: {OpCode: 0x8c, Operator: STY, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	0x8d: {OpCode: 0x8d, Operator: STA, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	0x8e: {OpCode: 0x8e, Operator: STX, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	0x8f: {OpCode: 0x8f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x90: {OpCode: 0x90, Operator: BCC, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0x91: {OpCode: 0x91, Operator: STA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 6, Effect: Write},
	0x92: {OpCode: 0x92, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x93: {OpCode: 0x93, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x94: {OpCode: 0x94, Operator: STY, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Write},
	0x95: {OpCode: 0x95, Operator: STA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Write},
	0x96: {OpCode: 0x96, Operator: STX, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4, Effect: Write},
	0x97: {OpCode: 0x97, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x98: {OpCode: 0x98, Operator: TYA, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x99: {OpCode: 0x99, Operator: STA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 5, Effect: Write},
	0x9a: {OpCode: 0x9a, Operator: TXS, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0x9b: {OpCode: 0x9b, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x9c: {OpCode: 0x9c, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x9d: {OpCode: 0x9d, Operator: STA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 5, Effect: Write},
	0x9e: {OpCode: 0x9e, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0x9f: {OpCode: 0x9f, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xa0: {OpCode: 0xa0, Operator: LDY, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xa1: {OpCode: 0xa1, Operator: LDA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0xa2: {OpCode: 0xa2, Operator: LDX, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xa3: {OpCode: 0xa3, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xa4: {OpCode: 0xa4, Operator: LDY, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xa5: {OpCode: 0xa5, Operator: LDA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xa6: {OpCode: 0xa6, Operator: LDX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xa7: {OpCode: 0xa7, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xa8: {OpCode: 0xa8, Operator: TAY, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xa9: {OpCode: 0xa9, Operator: LDA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xaa: {OpCode: 0xaa, Operator: TAX, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xab: {OpCode: 0xab, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xac: {OpCode: 0xac, Operator: LDY, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xad: {OpCode: 0xad, Operator: LDA, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xae: {OpCode: 0xae, Operator: LDX, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xaf: {OpCode: 0xaf, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xb0: {OpCode: 0xb0, Operator: BCS, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0xb1: {OpCode: 0xb1, Operator: LDA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0xb2: {OpCode: 0xb2, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xb3: {OpCode: 0xb3, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xb4: {OpCode: 0xb4, Operator: LDY, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0xb5: {OpCode: 0xb5, Operator: LDA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0xb6: {OpCode: 0xb6, Operator: LDX, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4, Effect: Read},
	0xb7: {OpCode: 0xb7, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xb8: {OpCode: 0xb8, Operator: CLV, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xb9: {OpCode: 0xb9, Operator: LDA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xba: {OpCode: 0xba, Operator: TSX, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xbb: {OpCode: 0xbb, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xbc: {OpCode: 0xbc, Operator: LDY, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xbd: {OpCode: 0xbd, Operator: LDA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xbe: {OpCode: 0xbe, Operator: LDX, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xbf: {OpCode: 0xbf, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xc0: {OpCode: 0xc0, Operator: CPY, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xc1: {OpCode: 0xc1, Operator: CMP, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0xc2: {OpCode: 0xc2, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xc3: {OpCode: 0xc3, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xc4: {OpCode: 0xc4, Operator: CPY, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xc5: {OpCode: 0xc5, Operator: CMP, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xc6: {OpCode: 0xc6, Operator: DEC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	0xc7: {OpCode: 0xc7, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xc8: {OpCode: 0xc8, Operator: INY, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xc9: {OpCode: 0xc9, Operator: CMP, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xca: {OpCode: 0xca, Operator: DEX, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xcb: {OpCode: 0xcb, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xcc: {OpCode: 0xcc, Operator: CPY, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xcd: {OpCode: 0xcd, Operator: CMP, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xce: {OpCode: 0xce, Operator: DEC, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	0xcf: {OpCode: 0xcf, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xd0: {OpCode: 0xd0, Operator: BNE, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0xd1: {OpCode: 0xd1, Operator: CMP, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0xd2: {OpCode: 0xd2, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xd3: {OpCode: 0xd3, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xd4: {OpCode: 0xd4, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xd5: {OpCode: 0xd5, Operator: CMP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0xd6: {OpCode: 0xd6, Operator: DEC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	0xd7: {OpCode: 0xd7, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xd8: {OpCode: 0xd8, Operator: CLD, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xd9: {OpCode: 0xd9, Operator: CMP, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xda: {OpCode: 0xda, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xdb: {OpCode: 0xdb, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xdc: {OpCode: 0xdc, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xdd: {OpCode: 0xdd, Operator: CMP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xde: {OpCode: 0xde, Operator: DEC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	0xdf: {OpCode: 0xdf, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xe0: {OpCode: 0xe0, Operator: CPX, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xe1: {OpCode: 0xe1, Operator: SBC, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	0xe2: {OpCode: 0xe2, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xe3: {OpCode: 0xe3, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xe4: {OpCode: 0xe4, Operator: CPX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xe5: {OpCode: 0xe5, Operator: SBC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	0xe6: {OpCode: 0xe6, Operator: INC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	0xe7: {OpCode: 0xe7, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xe8: {OpCode: 0xe8, Operator: INX, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xe9: {OpCode: 0xe9, Operator: SBC, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	0xea: {OpCode: 0xea, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xeb: {OpCode: 0xeb, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xec: {OpCode: 0xec, Operator: CPX, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xed: {OpCode: 0xed, Operator: SBC, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	0xee: {OpCode: 0xee, Operator: INC, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	0xef: {OpCode: 0xef, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xf0: {OpCode: 0xf0, Operator: BEQ, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	0xf1: {OpCode: 0xf1, Operator: SBC, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, PageSensitive: true, Effect: Read},
	0xf2: {OpCode: 0xf2, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xf3: {OpCode: 0xf3, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xf4: {OpCode: 0xf4, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xf5: {OpCode: 0xf5, Operator: SBC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	0xf6: {OpCode: 0xf6, Operator: INC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	0xf7: {OpCode: 0xf7, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xf8: {OpCode: 0xf8, Operator: SED, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	0xf9: {OpCode: 0xf9, Operator: SBC, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xfa: {OpCode: 0xfa, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xfb: {OpCode: 0xfb, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xfc: {OpCode: 0xfc, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
	0xfd: {OpCode: 0xfd, Operator: SBC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, PageSensitive: true, Effect: Read},
	0xfe: {OpCode: 0xfe, Operator: INC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	0xff: {OpCode: 0xff, Operator: KIL, AddressingMode: Implied, Bytes: 1, Cycles: 0, Effect: Interrupt},
}
