package symbol

// InstrKind distinguishes the four element shapes retained in the
// instruction stream projection (spec §3).
type InstrKind uint8

const (
	InstrOpcode InstrKind = iota
	InstrField
	InstrMethod
	InstrType
)

// Instruction is one element of a method's lossy, compact instruction
// stream: full operand bytes, local indices and line info are discarded;
// only opcode identity and symbolic references survive.
type Instruction struct {
	Kind InstrKind
	Op   Opcode

	// Owner+Name: set for InstrField and InstrMethod.
	// Owner alone (binary name): set for InstrType.
	Owner      string
	Name       string
	Descriptor string // InstrMethod only
}

// Opcode is a categorical opcode identity. The numeric values follow the
// JVM spec's opcode table closely enough for bucketing and n-gram
// purposes; exact parity with the full 256-opcode table is not required
// since the matching engine only cares about relative identity, not the
// operand semantics.
type Opcode uint8

const (
	OpNop Opcode = iota
	OpConstLoad
	OpLoad
	OpStore
	OpArrayLoad
	OpArrayStore
	OpPop
	OpDup
	OpSwap
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpNeg
	OpShift
	OpBitwise
	OpConvert
	OpCompare
	OpBranch
	OpSwitch
	OpReturn
	OpGetStatic
	OpPutStatic
	OpGetField
	OpPutField
	OpInvokeVirtual
	OpInvokeSpecial
	OpInvokeStatic
	OpInvokeInterface
	OpInvokeDynamic
	OpNew
	OpNewArray
	OpArrayLength
	OpThrow
	OpCheckCast
	OpInstanceOf
	OpMonitor
	OpOther
)

// IsInvoke reports whether the opcode represents any of the five method
// call forms.
func (o Opcode) IsInvoke() bool {
	switch o {
	case OpInvokeVirtual, OpInvokeSpecial, OpInvokeStatic, OpInvokeInterface, OpInvokeDynamic:
		return true
	default:
		return false
	}
}

// IsFieldAccess reports whether the opcode reads or writes a field.
func (o Opcode) IsFieldAccess() bool {
	switch o {
	case OpGetStatic, OpPutStatic, OpGetField, OpPutField:
		return true
	default:
		return false
	}
}
