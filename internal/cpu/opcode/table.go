// generated from opcodes.csv - do not hand-edit the table literal below.
// Regenerate with: go run ./generator (after editing opcodes.csv).

package opcode

// definitions is the full 256-entry NMOS 6510 opcode table, documented and
// undocumented instructions alike. Indexed directly by opcode byte.
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, Cycles: 7, Mode: Implied, PageSensitive: false, Category: Interrupt, Illegal: false},
	{OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x02, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x03, Mnemonic: "SLO", Bytes: 2, Cycles: 8, Mode: PreIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x04, Mnemonic: "NOP", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x07, Mnemonic: "SLO", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, Mode: Implied, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x0A, Mnemonic: "ASL", Bytes: 1, Cycles: 2, Mode: Accumulator, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x0B, Mnemonic: "ANC", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x0C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x0D, Mnemonic: "ORA", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x0E, Mnemonic: "ASL", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x0F, Mnemonic: "SLO", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x12, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x13, Mnemonic: "SLO", Bytes: 2, Cycles: 8, Mode: PostIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x14, Mnemonic: "NOP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x17, Mnemonic: "SLO", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x1A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x1B, Mnemonic: "SLO", Bytes: 3, Cycles: 7, Mode: AbsoluteY, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x1C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0x1D, Mnemonic: "ORA", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x1E, Mnemonic: "ASL", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x1F, Mnemonic: "SLO", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Subroutine, Illegal: false},
	{OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x22, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x23, Mnemonic: "RLA", Bytes: 2, Cycles: 8, Mode: PreIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x27, Mnemonic: "RLA", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x2A, Mnemonic: "ROL", Bytes: 1, Cycles: 2, Mode: Accumulator, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x2B, Mnemonic: "ANC", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x2C, Mnemonic: "BIT", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x2D, Mnemonic: "AND", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x2E, Mnemonic: "ROL", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x2F, Mnemonic: "RLA", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x32, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x33, Mnemonic: "RLA", Bytes: 2, Cycles: 8, Mode: PostIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x34, Mnemonic: "NOP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x37, Mnemonic: "RLA", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x3A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x3B, Mnemonic: "RLA", Bytes: 3, Cycles: 7, Mode: AbsoluteY, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x3C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0x3D, Mnemonic: "AND", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x3E, Mnemonic: "ROL", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x3F, Mnemonic: "RLA", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, Mode: Implied, PageSensitive: false, Category: Interrupt, Illegal: false},
	{OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x42, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x43, Mnemonic: "SRE", Bytes: 2, Cycles: 8, Mode: PreIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x44, Mnemonic: "NOP", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x47, Mnemonic: "SRE", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, Mode: Implied, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x4A, Mnemonic: "LSR", Bytes: 1, Cycles: 2, Mode: Accumulator, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x4B, Mnemonic: "ALR", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x4C, Mnemonic: "JMP", Bytes: 3, Cycles: 3, Mode: Absolute, PageSensitive: false, Category: Flow, Illegal: false},
	{OpCode: 0x4D, Mnemonic: "EOR", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x4E, Mnemonic: "LSR", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x4F, Mnemonic: "SRE", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x52, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x53, Mnemonic: "SRE", Bytes: 2, Cycles: 8, Mode: PostIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x54, Mnemonic: "NOP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x57, Mnemonic: "SRE", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x5A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x5B, Mnemonic: "SRE", Bytes: 3, Cycles: 7, Mode: AbsoluteY, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x5C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0x5D, Mnemonic: "EOR", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x5E, Mnemonic: "LSR", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x5F, Mnemonic: "SRE", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, Mode: Implied, PageSensitive: false, Category: Flow, Illegal: false},
	{OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x62, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x63, Mnemonic: "RRA", Bytes: 2, Cycles: 8, Mode: PreIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x64, Mnemonic: "NOP", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x67, Mnemonic: "RRA", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x6A, Mnemonic: "ROR", Bytes: 1, Cycles: 2, Mode: Accumulator, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x6B, Mnemonic: "ARR", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x6C, Mnemonic: "JMP", Bytes: 3, Cycles: 5, Mode: Indirect, PageSensitive: false, Category: Flow, Illegal: false},
	{OpCode: 0x6D, Mnemonic: "ADC", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x6E, Mnemonic: "ROR", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x6F, Mnemonic: "RRA", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x72, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x73, Mnemonic: "RRA", Bytes: 2, Cycles: 8, Mode: PostIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x74, Mnemonic: "NOP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x77, Mnemonic: "RRA", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x7A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x7B, Mnemonic: "RRA", Bytes: 3, Cycles: 7, Mode: AbsoluteY, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x7C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0x7D, Mnemonic: "ADC", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0x7E, Mnemonic: "ROR", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0x7F, Mnemonic: "RRA", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0x80, Mnemonic: "NOP", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x82, Mnemonic: "NOP", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x83, Mnemonic: "SAX", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x87, Mnemonic: "SAX", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x89, Mnemonic: "NOP", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x8A, Mnemonic: "TXA", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x8B, Mnemonic: "XAA", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x8C, Mnemonic: "STY", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x8D, Mnemonic: "STA", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x8E, Mnemonic: "STX", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x8F, Mnemonic: "SAX", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, Mode: PostIndexedIndirect, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x92, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0x93, Mnemonic: "AHX", Bytes: 2, Cycles: 6, Mode: PostIndexedIndirect, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, Mode: ZeroPageY, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x97, Mnemonic: "SAX", Bytes: 2, Cycles: 4, Mode: ZeroPageY, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, Mode: AbsoluteY, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x9A, Mnemonic: "TXS", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0x9B, Mnemonic: "TAS", Bytes: 3, Cycles: 5, Mode: AbsoluteY, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x9C, Mnemonic: "SHY", Bytes: 3, Cycles: 5, Mode: AbsoluteX, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x9D, Mnemonic: "STA", Bytes: 3, Cycles: 5, Mode: AbsoluteX, PageSensitive: false, Category: Write, Illegal: false},
	{OpCode: 0x9E, Mnemonic: "SHX", Bytes: 3, Cycles: 5, Mode: AbsoluteY, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0x9F, Mnemonic: "AHX", Bytes: 3, Cycles: 5, Mode: AbsoluteY, PageSensitive: false, Category: Write, Illegal: true},
	{OpCode: 0xA0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA3, Mnemonic: "LAX", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xA4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA7, Mnemonic: "LAX", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xA8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xA9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xAA, Mnemonic: "TAX", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xAB, Mnemonic: "LXA", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xAC, Mnemonic: "LDY", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xAD, Mnemonic: "LDA", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xAE, Mnemonic: "LDX", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xAF, Mnemonic: "LAX", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xB0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0xB1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xB2, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xB3, Mnemonic: "LAX", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0xB4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xB5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xB6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, Mode: ZeroPageY, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xB7, Mnemonic: "LAX", Bytes: 2, Cycles: 4, Mode: ZeroPageY, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xB8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xB9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xBA, Mnemonic: "TSX", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xBB, Mnemonic: "LAS", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0xBC, Mnemonic: "LDY", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xBD, Mnemonic: "LDA", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xBE, Mnemonic: "LDX", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xBF, Mnemonic: "LAX", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0xC0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xC1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xC2, Mnemonic: "NOP", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xC3, Mnemonic: "DCP", Bytes: 2, Cycles: 8, Mode: PreIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xC4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xC5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xC6, Mnemonic: "DEC", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xC7, Mnemonic: "DCP", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xC8, Mnemonic: "INY", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xC9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xCA, Mnemonic: "DEX", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xCB, Mnemonic: "AXS", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xCC, Mnemonic: "CPY", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xCD, Mnemonic: "CMP", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xCE, Mnemonic: "DEC", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xCF, Mnemonic: "DCP", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xD0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0xD1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xD2, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xD3, Mnemonic: "DCP", Bytes: 2, Cycles: 8, Mode: PostIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xD4, Mnemonic: "NOP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xD5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xD6, Mnemonic: "DEC", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xD7, Mnemonic: "DCP", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xD8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xD9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xDA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xDB, Mnemonic: "DCP", Bytes: 3, Cycles: 7, Mode: AbsoluteY, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xDC, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0xDD, Mnemonic: "CMP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xDE, Mnemonic: "DEC", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xDF, Mnemonic: "DCP", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xE0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xE1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, Mode: PreIndexedIndirect, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xE2, Mnemonic: "NOP", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xE3, Mnemonic: "ISC", Bytes: 2, Cycles: 8, Mode: PreIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xE4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xE5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, Mode: ZeroPage, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xE6, Mnemonic: "INC", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xE7, Mnemonic: "ISC", Bytes: 2, Cycles: 5, Mode: ZeroPage, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xE8, Mnemonic: "INX", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xE9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xEA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xEB, Mnemonic: "SBC", Bytes: 2, Cycles: 2, Mode: Immediate, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xEC, Mnemonic: "CPX", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xED, Mnemonic: "SBC", Bytes: 3, Cycles: 4, Mode: Absolute, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xEE, Mnemonic: "INC", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xEF, Mnemonic: "ISC", Bytes: 3, Cycles: 6, Mode: Absolute, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xF0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, Mode: Relative, PageSensitive: true, Category: Flow, Illegal: false},
	{OpCode: 0xF1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, Mode: PostIndexedIndirect, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xF2, Mnemonic: "JAM", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xF3, Mnemonic: "ISC", Bytes: 2, Cycles: 8, Mode: PostIndexedIndirect, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xF4, Mnemonic: "NOP", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xF5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, Mode: ZeroPageX, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xF6, Mnemonic: "INC", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xF7, Mnemonic: "ISC", Bytes: 2, Cycles: 6, Mode: ZeroPageX, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xF8, Mnemonic: "SED", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: false},
	{OpCode: 0xF9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, Mode: AbsoluteY, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xFA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, PageSensitive: false, Category: Read, Illegal: true},
	{OpCode: 0xFB, Mnemonic: "ISC", Bytes: 3, Cycles: 7, Mode: AbsoluteY, PageSensitive: false, Category: Modify, Illegal: true},
	{OpCode: 0xFC, Mnemonic: "NOP", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: true},
	{OpCode: 0xFD, Mnemonic: "SBC", Bytes: 3, Cycles: 4, Mode: AbsoluteX, PageSensitive: true, Category: Read, Illegal: false},
	{OpCode: 0xFE, Mnemonic: "INC", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: false},
	{OpCode: 0xFF, Mnemonic: "ISC", Bytes: 3, Cycles: 7, Mode: AbsoluteX, PageSensitive: false, Category: Modify, Illegal: true},
}
