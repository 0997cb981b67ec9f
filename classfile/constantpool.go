// Package classfile is the thin bytecode-reader collaborator: it parses
// archive entries into the symbol model the matching engine consumes.
// Out of scope per the matching-engine specification (specified only
// through the classfile.Reader interface) — this file and its siblings
// are the concrete, minimal implementation backing that interface.
package classfile

import (
	"encoding/binary"
	"fmt"
)

// cpTag identifies one constant pool entry's shape.
type cpTag uint8

const (
	tagUTF8               cpTag = 1
	tagInteger            cpTag = 3
	tagFloat              cpTag = 4
	tagLong               cpTag = 5
	tagDouble             cpTag = 6
	tagClass              cpTag = 7
	tagString             cpTag = 8
	tagFieldref           cpTag = 9
	tagMethodref          cpTag = 10
	tagInterfaceMethodref cpTag = 11
	tagNameAndType        cpTag = 12
	tagMethodHandle       cpTag = 15
	tagMethodType         cpTag = 16
	tagDynamic            cpTag = 17
	tagInvokeDynamic      cpTag = 18
	tagModule             cpTag = 19
	tagPackage            cpTag = 20
)

type cpEntry struct {
	tag cpTag

	// tagUTF8
	utf8 string

	// tagInteger/tagFloat
	int32v int32
	f32    float32

	// tagLong/tagDouble
	int64v int64
	f64    float64

	// tagClass, tagString, tagMethodType: index into utf8/class entries
	idx1 uint16
	// tagFieldref/Methodref/InterfaceMethodref/NameAndType/Dynamic/InvokeDynamic
	idx2 uint16
}

type constantPool []cpEntry // 1-indexed; index 0 unused

func (cp constantPool) utf8At(i uint16) string {
	if int(i) >= len(cp) {
		return ""
	}
	return cp[i].utf8
}

func (cp constantPool) classNameAt(i uint16) string {
	if int(i) >= len(cp) || cp[i].tag != tagClass {
		return ""
	}
	return cp.utf8At(cp[i].idx1)
}

// nameAndType resolves a NameAndType entry to (name, descriptor).
func (cp constantPool) nameAndType(i uint16) (string, string) {
	if int(i) >= len(cp) || cp[i].tag != tagNameAndType {
		return "", ""
	}
	e := cp[i]
	return cp.utf8At(e.idx1), cp.utf8At(e.idx2)
}

// ref resolves a Fieldref/Methodref/InterfaceMethodref to
// (ownerBinaryName, name, descriptor).
func (cp constantPool) ref(i uint16) (owner, name, descriptor string) {
	if int(i) >= len(cp) {
		return "", "", ""
	}
	e := cp[i]
	owner = cp.classNameAt(e.idx1)
	name, descriptor = cp.nameAndType(e.idx2)
	return owner, name, descriptor
}

type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) u1() uint8 {
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *byteReader) u2() uint16 {
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

func (r *byteReader) u4() uint32 {
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

func (r *byteReader) skip(n int) { r.pos += n }

func (r *byteReader) bytes(n int) []byte {
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func readConstantPool(r *byteReader, count int) (constantPool, error) {
	cp := make(constantPool, count)
	for i := 1; i < count; i++ {
		tag := cpTag(r.u1())
		switch tag {
		case tagUTF8:
			n := int(r.u2())
			cp[i] = cpEntry{tag: tag, utf8: string(r.bytes(n))}
		case tagInteger:
			cp[i] = cpEntry{tag: tag, int32v: int32(r.u4())}
		case tagFloat:
			cp[i] = cpEntry{tag: tag, f32: float32FromBits(r.u4())}
		case tagLong:
			hi, lo := r.u4(), r.u4()
			cp[i] = cpEntry{tag: tag, int64v: int64(hi)<<32 | int64(lo)}
			i++ // longs/doubles occupy two constant pool slots
		case tagDouble:
			hi, lo := r.u4(), r.u4()
			cp[i] = cpEntry{tag: tag, f64: float64FromBits(uint64(hi)<<32 | uint64(lo))}
			i++
		case tagClass, tagString, tagMethodType, tagModule, tagPackage:
			cp[i] = cpEntry{tag: tag, idx1: r.u2()}
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			cp[i] = cpEntry{tag: tag, idx1: r.u2(), idx2: r.u2()}
		case tagMethodHandle:
			r.u1()
			cp[i] = cpEntry{tag: tag, idx1: r.u2()}
		default:
			return nil, fmt.Errorf("classfile: unknown constant pool tag %d at index %d", tag, i)
		}
	}
	return cp, nil
}
