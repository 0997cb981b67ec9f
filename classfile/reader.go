package classfile

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/RuneBox/symmap/symbol"
)

// Reader is the interface the matching engine's callers (cmd/symmap) use
// to turn an archive path into a symbol.Environment. This is the only
// contract the core depends on (spec §6) — everything in this package is
// a concrete implementation detail behind it.
type Reader interface {
	Load(path string) (*symbol.Environment, error)
}

// ZipReader loads a JVM-class-format JAR (a zip archive of .class
// entries) into a symbol.Environment.
type ZipReader struct {
	Obfuscated symbol.NonObfuscatedPredicate
}

// NewZipReader builds a ZipReader using the given obfuscation predicate.
func NewZipReader(obfuscated symbol.NonObfuscatedPredicate) *ZipReader {
	return &ZipReader{Obfuscated: obfuscated}
}

// Load implements Reader.
func (zr *ZipReader) Load(path string) (*symbol.Environment, error) {
	zf, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("classfile: open %s: %w", path, err)
	}
	defer zf.Close()

	var classes []*symbol.Class
	for _, entry := range zf.File {
		if entry.FileInfo().IsDir() || !strings.HasSuffix(entry.Name, ".class") {
			continue
		}
		data, err := readZipEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("classfile: read %s in %s: %w", entry.Name, path, err)
		}
		class, err := ParseClass(data, zr.Obfuscated)
		if err != nil {
			return nil, fmt.Errorf("classfile: parse %s in %s: %w", entry.Name, path, err)
		}
		classes = append(classes, class)
	}
	return symbol.NewEnvironment(classes), nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
