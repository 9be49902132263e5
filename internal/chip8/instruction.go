package chip8

// OperandKind classifies the token shapes an instruction form accepts.
type OperandKind int

// Operand kinds. The shape of a token, not its position, selects the
// instruction form when a mnemonic is overloaded.
const (
	Register  OperandKind = iota // register reference with the V sigil
	Immediate                    // unsigned decimal literal
	Keyword                      // fixed keyword operand
)

// Field identifies the opcode bits an operand value occupies.
type Field int

// Operand fields of the opcode.
const (
	FieldNone Field = iota // operand carries no opcode bits
	FieldX                 // bits 8-11, first register index
	FieldY                 // bits 4-7, second register index
	FieldN                 // bits 0-3, nibble constant
	FieldKK                // bits 0-7, byte constant
	FieldNNN               // bits 0-11, address
)

// extract returns the field value contained in the opcode.
func (f Field) extract(opcode uint16) uint16 {
	switch f {
	case FieldX:
		return (opcode & 0x0F00) >> 8
	case FieldY:
		return (opcode & 0x00F0) >> 4
	case FieldN:
		return opcode & 0x000F
	case FieldKK:
		return opcode & 0x00FF
	case FieldNNN:
		return opcode & 0x0FFF
	default:
		return 0
	}
}

// pack merges a field value into the opcode.
func (f Field) pack(opcode, value uint16) uint16 {
	switch f {
	case FieldX:
		return opcode | value<<8
	case FieldY:
		return opcode | value<<4
	case FieldN, FieldKK, FieldNNN:
		return opcode | value
	default:
		return opcode
	}
}

// limit returns the highest value the field can hold.
func (f Field) limit() uint16 {
	switch f {
	case FieldKK:
		return 0xFF
	case FieldNNN:
		return 0xFFF
	default:
		return 0xF
	}
}

// Operand describes one operand slot of an instruction form. Keyword pins
// the spelling for keyword operands and for fixed registers like the V0
// base register of JP V0, addr.
type Operand struct {
	Kind    OperandKind
	Keyword string
	Field   Field
}

// Instruction describes one instruction form: the fixed opcode bits that
// identify it in binary and the operand pattern that selects it in text.
type Instruction struct {
	Name     string
	Mask     uint16
	Value    uint16
	Operands []Operand
}

// registerPair is the Vx, Vy operand pattern of the arithmetic family.
var registerPair = []Operand{
	{Kind: Register, Field: FieldX},
	{Kind: Register, Field: FieldY},
}

// Instructions contains all instruction forms, grouped by the leading
// opcode nibble.
var Instructions = [16][]*Instruction{
	0x0: {
		{Name: "CLS", Mask: 0xF0FF, Value: 0x00E0},
		{Name: "RET", Mask: 0xF0FF, Value: 0x00EE},
	},
	0x1: {
		{Name: "JP", Mask: 0xF000, Value: 0x1000, Operands: []Operand{
			{Kind: Immediate, Field: FieldNNN},
		}},
	},
	0x2: {
		{Name: "CALL", Mask: 0xF000, Value: 0x2000, Operands: []Operand{
			{Kind: Immediate, Field: FieldNNN},
		}},
	},
	0x3: {
		{Name: "SE", Mask: 0xF000, Value: 0x3000, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Immediate, Field: FieldKK},
		}},
	},
	0x4: {
		{Name: "SNE", Mask: 0xF000, Value: 0x4000, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Immediate, Field: FieldKK},
		}},
	},
	0x5: {
		{Name: "SE", Mask: 0xF000, Value: 0x5000, Operands: registerPair},
	},
	0x6: {
		{Name: "LD", Mask: 0xF000, Value: 0x6000, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Immediate, Field: FieldKK},
		}},
	},
	0x7: {
		{Name: "ADD", Mask: 0xF000, Value: 0x7000, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Immediate, Field: FieldKK},
		}},
	},
	0x8: {
		{Name: "LD", Mask: 0xF00F, Value: 0x8000, Operands: registerPair},
		{Name: "OR", Mask: 0xF00F, Value: 0x8001, Operands: registerPair},
		{Name: "AND", Mask: 0xF00F, Value: 0x8002, Operands: registerPair},
		{Name: "XOR", Mask: 0xF00F, Value: 0x8003, Operands: registerPair},
		{Name: "ADD", Mask: 0xF00F, Value: 0x8004, Operands: registerPair},
		{Name: "SUB", Mask: 0xF00F, Value: 0x8005, Operands: registerPair},
		{Name: "SHR", Mask: 0xF00F, Value: 0x8006, Operands: registerPair},
		{Name: "SUBN", Mask: 0xF00F, Value: 0x8007, Operands: registerPair},
		{Name: "SHL", Mask: 0xF00F, Value: 0x800E, Operands: registerPair},
	},
	0x9: {
		{Name: "SNE", Mask: 0xF000, Value: 0x9000, Operands: registerPair},
	},
	0xA: {
		{Name: "LD", Mask: 0xF000, Value: 0xA000, Operands: []Operand{
			{Kind: Keyword, Keyword: "I"},
			{Kind: Immediate, Field: FieldNNN},
		}},
	},
	0xB: {
		{Name: "JP", Mask: 0xF000, Value: 0xB000, Operands: []Operand{
			{Kind: Register, Keyword: "V0"},
			{Kind: Immediate, Field: FieldNNN},
		}},
	},
	0xC: {
		{Name: "RND", Mask: 0xF000, Value: 0xC000, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Immediate, Field: FieldKK},
		}},
	},
	0xD: {
		{Name: "DRW", Mask: 0xF000, Value: 0xD000, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Register, Field: FieldY},
			{Kind: Immediate, Field: FieldN},
		}},
	},
	0xE: {
		{Name: "SKP", Mask: 0xF0FF, Value: 0xE09E, Operands: []Operand{
			{Kind: Register, Field: FieldX},
		}},
		{Name: "SKNP", Mask: 0xF0FF, Value: 0xE0A1, Operands: []Operand{
			{Kind: Register, Field: FieldX},
		}},
	},
	0xF: {
		{Name: "LD", Mask: 0xF0FF, Value: 0xF007, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Keyword, Keyword: "DT"},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF00A, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Keyword, Keyword: "K"},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF015, Operands: []Operand{
			{Kind: Keyword, Keyword: "DT"},
			{Kind: Register, Field: FieldX},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF018, Operands: []Operand{
			{Kind: Keyword, Keyword: "ST"},
			{Kind: Register, Field: FieldX},
		}},
		{Name: "ADD", Mask: 0xF0FF, Value: 0xF01E, Operands: []Operand{
			{Kind: Keyword, Keyword: "I"},
			{Kind: Register, Field: FieldX},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF029, Operands: []Operand{
			{Kind: Keyword, Keyword: "F"},
			{Kind: Register, Field: FieldX},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF033, Operands: []Operand{
			{Kind: Keyword, Keyword: "B"},
			{Kind: Register, Field: FieldX},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF055, Operands: []Operand{
			{Kind: Keyword, Keyword: "I"},
			{Kind: Register, Field: FieldX},
		}},
		{Name: "LD", Mask: 0xF0FF, Value: 0xF065, Operands: []Operand{
			{Kind: Register, Field: FieldX},
			{Kind: Keyword, Keyword: "I"},
		}},
	},
}

// instructionsByName indexes the instruction forms by mnemonic for the
// encoder. Forms keep their table order so overload resolution stays
// deterministic.
var instructionsByName = buildNameIndex()

func buildNameIndex() map[string][]*Instruction {
	index := make(map[string][]*Instruction)
	for _, bucket := range Instructions {
		for _, ins := range bucket {
			index[ins.Name] = append(index[ins.Name], ins)
		}
	}
	return index
}
