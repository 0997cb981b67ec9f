package classfile

import (
	"testing"

	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownOpcodes(t *testing.T) {
	require := require.New(t)

	cases := map[uint8]symbol.Opcode{
		0x00: symbol.OpNop,
		0x04: symbol.OpConstLoad, // iconst_1
		0x1a: symbol.OpLoad,      // iload_0
		0x3b: symbol.OpStore,     // istore_0
		0x60: symbol.OpAdd,       // iadd
		0xac: symbol.OpReturn,    // ireturn
		0xb1: symbol.OpReturn,    // return
		0xbc: symbol.OpNewArray,  // newarray (primitive)
		0xbe: symbol.OpArrayLength,
		0xbf: symbol.OpThrow,
		0xc2: symbol.OpMonitor,
	}
	for op, want := range cases {
		require.Equal(want, classify(op), "opcode %#x", op)
	}
}

func TestOperandLengthKnownOpcodes(t *testing.T) {
	require := require.New(t)

	require.Equal(1, operandLength(0x10)) // bipush
	require.Equal(2, operandLength(0x11)) // sipush
	require.Equal(0, operandLength(0x00)) // nop
}

func TestScanCodeCollectsInvokeInstruction(t *testing.T) {
	require := require.New(t)

	cp := constantPool{
		{}, // 0 unused
		{tag: tagUTF8, utf8: "com/example/Foo"},  // 1
		{tag: tagClass, idx1: 1},                 // 2
		{tag: tagUTF8, utf8: "bar"},               // 3
		{tag: tagUTF8, utf8: "()V"},                // 4
		{tag: tagNameAndType, idx1: 3, idx2: 4},    // 5
		{tag: tagMethodref, idx1: 2, idx2: 5},       // 6
	}
	// invokevirtual #6; return
	code := []byte{0xb6, 0x00, 0x06, 0xb1}

	instrs, consts := scanCode(code, cp)
	require.Empty(consts)
	require.Len(instrs, 2)
	require.Equal(symbol.InstrMethod, instrs[0].Kind)
	require.Equal(symbol.OpInvokeVirtual, instrs[0].Op)
	require.Equal("com/example/Foo", instrs[0].Owner)
	require.Equal("bar", instrs[0].Name)
	require.Equal("()V", instrs[0].Descriptor)
	require.Equal(symbol.OpReturn, instrs[1].Op)
}

func TestScanCodeResolvesLoadedStringConstant(t *testing.T) {
	require := require.New(t)

	cp := constantPool{
		{},
		{tag: tagUTF8, utf8: "hello"},
		{tag: tagString, idx1: 1},
	}
	code := []byte{0x12, 0x02} // ldc #2

	instrs, consts := scanCode(code, cp)
	require.Len(instrs, 1)
	require.Len(consts, 1)
	require.Equal(symbol.ConstString, consts[0].Kind)
	require.Equal("hello", consts[0].Str)
}
