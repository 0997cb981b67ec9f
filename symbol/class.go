package symbol

import "strings"

// Class is an immutable record for one class entry in an archive. Every
// inter-symbol reference (super, interfaces) is stored as a plain binary
// name, never a pointer, so the inherently cyclic class graph never needs
// to be modeled as a pointer graph (spec §9) — resolution always goes
// through the owning Environment's by-name map.
type Class struct {
	Name        string
	Super       string // "" if none (e.g. java/lang/Object itself, or unknown)
	Interfaces  []string
	AccessFlags Access

	Methods []*Method
	Fields  []*Field

	obfuscated     bool
	isInDefaultPkg bool
}

// NewClass builds a Class record, deriving Obfuscated and
// IsInDefaultPackage at construction time per spec §6 ("obfuscation
// heuristic is applied at load time; downstream code may not re-derive
// it").
func NewClass(name, super string, interfaces []string, access Access, nonObfuscated NonObfuscatedPredicate) *Class {
	simple := simpleName(name)
	return &Class{
		Name:           name,
		Super:          super,
		Interfaces:     interfaces,
		AccessFlags:    access,
		obfuscated:     !nonObfuscated(simple),
		isInDefaultPkg: !strings.Contains(name, "/"),
	}
}

func (c *Class) FullSignature() string   { return c.Name }
func (c *Class) Obfuscated() bool        { return c.obfuscated }
func (c *Class) IsInDefaultPackage() bool { return c.isInDefaultPkg }

func simpleName(binaryName string) string {
	if i := strings.LastIndexByte(binaryName, '/'); i >= 0 {
		return binaryName[i+1:]
	}
	return binaryName
}
