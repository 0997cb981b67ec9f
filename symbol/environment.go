package symbol

// NonObfuscatedPredicate decides whether a simple name counts as
// non-obfuscated (spec §9 / glossary: a symbol is obfuscated iff its
// simple name does NOT start with one of a configured set of meaningful
// prefixes). It is injected by the loader, never hardcoded, per the
// spec's open question about keeping this a configurable predicate. A
// Class/Method/Field's stored `obfuscated` bit is the NEGATION of this
// predicate's result — see NewClass/NewMethod/NewField.
type NonObfuscatedPredicate func(simpleName string) bool

// PrefixPredicate builds a NonObfuscatedPredicate from a set of
// meaningful prefixes: a name is non-obfuscated (predicate returns true,
// meaning "recognized name") iff it starts with one of them.
func PrefixPredicate(prefixes []string) NonObfuscatedPredicate {
	return func(simpleName string) bool {
		for _, p := range prefixes {
			if len(simpleName) >= len(p) && simpleName[:len(p)] == p {
				return true
			}
		}
		return false
	}
}

// Environment is one archive's fully loaded, read-only symbol index:
// three total maps keyed by full signature (spec §3/§6). Built once by a
// classfile.Reader and never mutated afterward.
type Environment struct {
	Classes map[string]*Class
	Methods map[string]*Method
	Fields  map[string]*Field
}

// NewEnvironment wraps already-built classes into a queryable Environment,
// indexing every owned method and field by full signature.
func NewEnvironment(classes []*Class) *Environment {
	env := &Environment{
		Classes: make(map[string]*Class, len(classes)),
		Methods: make(map[string]*Method),
		Fields:  make(map[string]*Field),
	}
	for _, c := range classes {
		env.Classes[c.Name] = c
		for _, m := range c.Methods {
			env.Methods[m.FullSignature()] = m
		}
		for _, f := range c.Fields {
			env.Fields[f.FullSignature()] = f
		}
	}
	return env
}

// Class looks up a class by binary name.
func (e *Environment) Class(name string) (*Class, bool) {
	c, ok := e.Classes[name]
	return c, ok
}

// Method looks up a method by full signature.
func (e *Environment) Method(fullSig string) (*Method, bool) {
	m, ok := e.Methods[fullSig]
	return m, ok
}

// Field looks up a field by full signature.
func (e *Environment) Field(fullSig string) (*Field, bool) {
	f, ok := e.Fields[fullSig]
	return f, ok
}
