package classfile

import "github.com/RuneBox/symmap/symbol"

// scanCode walks a Code attribute's raw bytecode, projecting it into the
// lossy instruction stream symbol.Instruction described in spec §3, and
// collecting every constant seen via a load-constant opcode into the
// returned constants slice.
func scanCode(code []byte, cp constantPool) ([]symbol.Instruction, []symbol.Const) {
	var instrs []symbol.Instruction
	var consts []symbol.Const

	r := &byteReader{buf: code}
	for r.pos < len(r.buf) {
		opStart := r.pos
		op := r.u1()

		switch op {
		case 0x12: // ldc
			idx := uint16(r.u1())
			if c, ok := resolveLoadableConstant(cp, idx); ok {
				consts = append(consts, c)
			}
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrOpcode, Op: symbol.OpConstLoad})
		case 0x13, 0x14: // ldc_w, ldc2_w
			idx := r.u2()
			if c, ok := resolveLoadableConstant(cp, idx); ok {
				consts = append(consts, c)
			}
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrOpcode, Op: symbol.OpConstLoad})

		case 0xb2, 0xb3, 0xb4, 0xb5: // getstatic/putstatic/getfield/putfield
			idx := r.u2()
			owner, name, _ := cp.ref(idx)
			fieldOp := map[uint8]symbol.Opcode{0xb2: symbol.OpGetStatic, 0xb3: symbol.OpPutStatic, 0xb4: symbol.OpGetField, 0xb5: symbol.OpPutField}[op]
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrField, Op: fieldOp, Owner: owner, Name: name})

		case 0xb6, 0xb7, 0xb8, 0xb9, 0xba: // invoke*
			idx := r.u2()
			var owner, name, desc string
			if op == 0xba { // invokedynamic has no owner class
				r.skip(2) // two reserved zero bytes
				_, name, desc = cp.nameAndType(cp[idx].idx2)
			} else {
				owner, name, desc = cp.ref(idx)
				if op == 0xb9 { // invokeinterface: count, 0
					r.skip(2)
				}
			}
			invokeOp := map[uint8]symbol.Opcode{
				0xb6: symbol.OpInvokeVirtual, 0xb7: symbol.OpInvokeSpecial,
				0xb8: symbol.OpInvokeStatic, 0xb9: symbol.OpInvokeInterface,
				0xba: symbol.OpInvokeDynamic,
			}[op]
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrMethod, Op: invokeOp, Owner: owner, Name: name, Descriptor: desc})

		case 0xbb, 0xbd, 0xc0, 0xc1: // new, anewarray, checkcast, instanceof
			idx := r.u2()
			name := cp.classNameAt(idx)
			typeOp := map[uint8]symbol.Opcode{0xbb: symbol.OpNew, 0xbd: symbol.OpNewArray, 0xc0: symbol.OpCheckCast, 0xc1: symbol.OpInstanceOf}[op]
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrType, Op: typeOp, Owner: name})

		case 0xc5: // multianewarray
			idx := r.u2()
			r.u1() // dimensions
			name := cp.classNameAt(idx)
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrType, Op: symbol.OpNewArray, Owner: name})

		case 0xaa: // tableswitch
			pad := (4 - (r.pos % 4)) % 4
			r.skip(pad)
			r.skip(4) // default
			lowV, highV := int32(r.u4()), int32(r.u4())
			n := int(highV - lowV + 1)
			if n > 0 {
				r.skip(4 * n)
			}
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrOpcode, Op: symbol.OpSwitch})
		case 0xab: // lookupswitch
			pad := (4 - (r.pos % 4)) % 4
			r.skip(pad)
			r.skip(4) // default
			n := int(r.u4())
			r.skip(8 * n)
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrOpcode, Op: symbol.OpSwitch})

		case 0xc4: // wide
			modified := r.u1()
			if modified == 0x84 { // iinc
				r.skip(4)
			} else {
				r.skip(2)
			}
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrOpcode, Op: classify(modified)})

		default:
			operandLen := operandLength(op)
			r.skip(operandLen)
			instrs = append(instrs, symbol.Instruction{Kind: symbol.InstrOpcode, Op: classify(op)})
		}

		if r.pos == opStart {
			// Defensive: never loop forever on an unrecognized opcode shape.
			r.pos++
		}
	}
	return instrs, consts
}

func resolveLoadableConstant(cp constantPool, idx uint16) (symbol.Const, bool) {
	if int(idx) >= len(cp) {
		return symbol.Const{}, false
	}
	e := cp[idx]
	switch e.tag {
	case tagInteger:
		return symbol.Int(int64(e.int32v)), true
	case tagLong:
		return symbol.Long(e.int64v), true
	case tagFloat:
		return symbol.Float(e.f32), true
	case tagDouble:
		return symbol.Double(e.f64), true
	case tagString:
		return symbol.String(cp.utf8At(e.idx1)), true
	case tagClass:
		return symbol.Type(cp.classNameAt(idx)), true
	default:
		return symbol.Const{}, false
	}
}

// operandLength returns the number of immediate operand bytes following a
// (non-wide, non-switch) opcode, per the JVM instruction set table.
func operandLength(op uint8) int {
	switch {
	case op == 0x10, op == 0x12, op == 0x15, op == 0x16, op == 0x17, op == 0x18, op == 0x19,
		op == 0x36, op == 0x37, op == 0x38, op == 0x39, op == 0x3a, op == 0xa9, op == 0xbc:
		return 1
	case op == 0x11, op == 0x13, op == 0x14, op == 0x84,
		(op >= 0x99 && op <= 0xa8), op == 0xb2, op == 0xb3, op == 0xb4, op == 0xb5,
		op == 0xb6, op == 0xb7, op == 0xb8, op == 0xbb, op == 0xbd, op == 0xc0, op == 0xc1,
		op == 0xc6, op == 0xc7:
		return 2
	case op == 0xb9, op == 0xba, op == 0xc5:
		return 4 // handled specially above, kept here for completeness
	case op == 0xc8, op == 0xc9:
		return 4
	default:
		return 0
	}
}

// classify maps an opcode byte to its categorical symbol.Opcode identity.
func classify(op uint8) symbol.Opcode {
	switch {
	case op == 0x00:
		return symbol.OpNop
	case op == 0x01 || (op >= 0x02 && op <= 0x14):
		return symbol.OpConstLoad
	case (op >= 0x15 && op <= 0x19) || (op >= 0x1a && op <= 0x2d):
		return symbol.OpLoad
	case (op >= 0x2e && op <= 0x35):
		return symbol.OpArrayLoad
	case (op >= 0x36 && op <= 0x3a) || (op >= 0x3b && op <= 0x4e):
		return symbol.OpStore
	case (op >= 0x4f && op <= 0x56):
		return symbol.OpArrayStore
	case op == 0x57 || op == 0x58:
		return symbol.OpPop
	case op >= 0x59 && op <= 0x5e:
		return symbol.OpDup
	case op == 0x5f:
		return symbol.OpSwap
	case op == 0x60 || op == 0x61 || op == 0x62 || op == 0x63:
		return symbol.OpAdd
	case op == 0x64 || op == 0x65 || op == 0x66 || op == 0x67:
		return symbol.OpSub
	case op == 0x68 || op == 0x69 || op == 0x6a || op == 0x6b:
		return symbol.OpMul
	case op == 0x6c || op == 0x6d || op == 0x6e || op == 0x6f:
		return symbol.OpDiv
	case op == 0x70 || op == 0x71 || op == 0x72 || op == 0x73:
		return symbol.OpRem
	case op == 0x74 || op == 0x75 || op == 0x76 || op == 0x77:
		return symbol.OpNeg
	case op >= 0x78 && op <= 0x7d:
		return symbol.OpShift
	case op >= 0x7e && op <= 0x83:
		return symbol.OpBitwise
	case op == 0x84:
		return symbol.OpOther // iinc
	case op >= 0x85 && op <= 0x93:
		return symbol.OpConvert
	case op >= 0x94 && op <= 0x98:
		return symbol.OpCompare
	case (op >= 0x99 && op <= 0xa8) || op == 0xc6 || op == 0xc7 || op == 0xc8 || op == 0xc9:
		return symbol.OpBranch
	case op == 0xaa || op == 0xab:
		return symbol.OpSwitch
	case op >= 0xac && op <= 0xb1:
		return symbol.OpReturn
	case op == 0xbc:
		return symbol.OpNewArray
	case op == 0xbe:
		return symbol.OpArrayLength
	case op == 0xbf:
		return symbol.OpThrow
	case op == 0xc2 || op == 0xc3:
		return symbol.OpMonitor
	default:
		return symbol.OpOther
	}
}
