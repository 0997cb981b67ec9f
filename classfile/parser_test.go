package classfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

// classBuilder assembles a minimal, valid .class file byte-by-byte so
// ParseClass can be exercised without a real compiled fixture on disk.
type classBuilder struct {
	buf bytes.Buffer
}

func (b *classBuilder) u1(v uint8)  { b.buf.WriteByte(v) }
func (b *classBuilder) u2(v uint16) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *classBuilder) u4(v uint32) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *classBuilder) utf8(s string) {
	b.u1(1) // tagUTF8
	b.u2(uint16(len(s)))
	b.buf.WriteString(s)
}
func (b *classBuilder) class(utf8Idx uint16) { b.u1(7); b.u2(utf8Idx) }

// buildMinimalClass emits: class "Foo" extends "java/lang/Object", no
// interfaces, no fields, no methods.
func buildMinimalClass(name, super string) []byte {
	var b classBuilder
	b.u4(0xCAFEBABE)
	b.u2(0) // minor
	b.u2(52) // major (Java 8)

	b.u2(5) // constant_pool_count (entries 1..4)
	b.utf8(name)    // #1
	b.class(1)      // #2 -> Class "Foo"
	b.utf8(super)   // #3
	b.class(3)      // #4 -> Class super

	b.u2(0x0021)    // access_flags: public, super
	b.u2(2)         // this_class
	b.u2(4)         // super_class
	b.u2(0)         // interfaces_count
	b.u2(0)         // fields_count
	b.u2(0)         // methods_count
	b.u2(0)         // attributes_count

	return b.buf.Bytes()
}

func TestParseClassMinimal(t *testing.T) {
	require := require.New(t)

	data := buildMinimalClass("Foo", "java/lang/Object")
	class, err := ParseClass(data, symbol.PrefixPredicate(nil))
	require.NoError(err)
	require.Equal("Foo", class.Name)
	require.Equal("java/lang/Object", class.Super)
	require.Empty(class.Methods)
	require.Empty(class.Fields)
}

func TestParseClassRejectsBadMagic(t *testing.T) {
	require := require.New(t)

	data := buildMinimalClass("Foo", "java/lang/Object")
	data[0] = 0x00

	_, err := ParseClass(data, symbol.PrefixPredicate(nil))
	require.Error(err)
}

func TestParseClassRejectsTruncatedHeader(t *testing.T) {
	require := require.New(t)

	_, err := ParseClass([]byte{0xCA, 0xFE}, symbol.PrefixPredicate(nil))
	require.Error(err)
}
