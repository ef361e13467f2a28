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

// Operator identifies the operation performed by an instruction. The
// String() function returns the mnemonic.
type Operator int

// List of operators. KIL is the zero value and is used for all undefined
// opcodes.
const (
	KIL Operator = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var mnemonics = [...]string{
	KIL: "KIL",
	ADC: "ADC",
	AND: "AND",
	ASL: "ASL",
	BCC: "BCC",
	BCS: "BCS",
	BEQ: "BEQ",
	BIT: "BIT",
	BMI: "BMI",
	BNE: "BNE",
	BPL: "BPL",
	BRK: "BRK",
	BVC: "BVC",
	BVS: "BVS",
	CLC: "CLC",
	CLD: "CLD",
	CLI: "CLI",
	CLV: "CLV",
	CMP: "CMP",
	CPX: "CPX",
	CPY: "CPY",
	DEC: "DEC",
	DEX: "DEX",
	DEY: "DEY",
	EOR: "EOR",
	INC: "INC",
	INX: "INX",
	INY: "INY",
	JMP: "JMP",
	JSR: "JSR",
	LDA: "LDA",
	LDX: "LDX",
	LDY: "LDY",
	LSR: "LSR",
	NOP: "NOP",
	ORA: "ORA",
	PHA: "PHA",
	PHP: "PHP",
	PLA: "PLA",
	PLP: "PLP",
	ROL: "ROL",
	ROR: "ROR",
	RTI: "RTI",
	RTS: "RTS",
	SBC: "SBC",
	SEC: "SEC",
	SED: "SED",
	SEI: "SEI",
	STA: "STA",
	STX: "STX",
	STY: "STY",
	TAX: "TAX",
	TAY: "TAY",
	TSX: "TSX",
	TXA: "TXA",
	TXS: "TXS",
	TYA: "TYA",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[o]
}
