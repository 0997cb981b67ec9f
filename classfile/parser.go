package classfile

import (
	"fmt"

	"github.com/RuneBox/symmap/symbol"
)

// ParseClass decodes one .class file's raw bytes into a symbol.Class,
// including its owned methods and fields. obfuscated classifies simple
// names per the configured prefix predicate (spec §9).
func ParseClass(data []byte, obfuscated symbol.NonObfuscatedPredicate) (*symbol.Class, error) {
	r := &byteReader{buf: data}
	if len(data) < 10 {
		return nil, fmt.Errorf("classfile: truncated header (%d bytes)", len(data))
	}
	magic := r.u4()
	if magic != 0xCAFEBABE {
		return nil, fmt.Errorf("classfile: bad magic %#x", magic)
	}
	r.u2() // minor version
	r.u2() // major version

	cpCount := int(r.u2())
	cp, err := readConstantPool(r, cpCount)
	if err != nil {
		return nil, err
	}

	accessFlags := symbol.Access(r.u2())
	thisClassIdx := r.u2()
	superClassIdx := r.u2()
	name := cp.classNameAt(thisClassIdx)
	super := cp.classNameAt(superClassIdx)

	ifaceCount := int(r.u2())
	interfaces := make([]string, 0, ifaceCount)
	for i := 0; i < ifaceCount; i++ {
		interfaces = append(interfaces, cp.classNameAt(r.u2()))
	}

	fields, err := readFields(r, cp, name, obfuscated)
	if err != nil {
		return nil, err
	}
	methods, err := readMethods(r, cp, name, obfuscated)
	if err != nil {
		return nil, err
	}
	// Trailing class-level attributes are irrelevant to matching and are
	// not parsed.

	class := symbol.NewClass(name, super, interfaces, accessFlags, obfuscated)
	class.Fields = fields
	class.Methods = methods
	return class, nil
}

func skipAttributes(r *byteReader, count int) {
	for i := 0; i < count; i++ {
		r.u2() // name index
		length := r.u4()
		r.skip(int(length))
	}
}

func readFields(r *byteReader, cp constantPool, owner string, obfuscated symbol.NonObfuscatedPredicate) ([]*symbol.Field, error) {
	count := int(r.u2())
	fields := make([]*symbol.Field, 0, count)
	for i := 0; i < count; i++ {
		access := symbol.Access(r.u2())
		nameIdx := r.u2()
		descIdx := r.u2()
		name := cp.utf8At(nameIdx)
		descriptor := cp.utf8At(descIdx)

		attrCount := int(r.u2())
		var initial *symbol.Const
		for a := 0; a < attrCount; a++ {
			attrNameIdx := r.u2()
			length := r.u4()
			attrName := cp.utf8At(attrNameIdx)
			if attrName == "ConstantValue" && length == 2 {
				valIdx := r.u2()
				if c, ok := resolveLoadableConstant(cp, valIdx); ok {
					initial = &c
				}
			} else {
				r.skip(int(length))
			}
		}

		fields = append(fields, symbol.NewField(owner, name, descriptor, access, initial, obfuscated))
	}
	return fields, nil
}

func readMethods(r *byteReader, cp constantPool, owner string, obfuscated symbol.NonObfuscatedPredicate) ([]*symbol.Method, error) {
	count := int(r.u2())
	methods := make([]*symbol.Method, 0, count)
	for i := 0; i < count; i++ {
		access := symbol.Access(r.u2())
		nameIdx := r.u2()
		descIdx := r.u2()
		name := cp.utf8At(nameIdx)
		descriptor := cp.utf8At(descIdx)

		attrCount := int(r.u2())
		var instrs []symbol.Instruction
		var consts []symbol.Const
		var exceptions []string
		for a := 0; a < attrCount; a++ {
			attrNameIdx := r.u2()
			length := r.u4()
			attrName := cp.utf8At(attrNameIdx)
			end := r.pos + int(length)
			switch attrName {
			case "Code":
				r.u2() // max_stack
				r.u2() // max_locals
				codeLen := r.u4()
				code := r.bytes(int(codeLen))
				instrs, consts = scanCode(code, cp)

				excTableLen := int(r.u2())
				r.skip(excTableLen * 8)

				codeAttrCount := int(r.u2())
				skipAttributes(r, codeAttrCount)
			case "Exceptions":
				n := int(r.u2())
				for e := 0; e < n; e++ {
					exceptions = append(exceptions, cp.classNameAt(r.u2()))
				}
			default:
				// unhandled attribute (LineNumberTable, LocalVariableTable,
				// Signature, RuntimeVisibleAnnotations, ...): irrelevant to
				// matching, skip.
			}
			r.pos = end
		}

		methods = append(methods, symbol.NewMethod(owner, name, descriptor, access, exceptions, instrs, consts, obfuscated))
	}
	return methods, nil
}
