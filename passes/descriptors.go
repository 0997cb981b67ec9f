package passes

import (
	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/match"
	"github.com/RuneBox/symmap/symbol"
)

// UniqueDescriptors implements spec §4.5: remap every class name referenced
// in a method/field descriptor through the already-confirmed class table
// (unresolved references become the "*" wildcard), then vote between
// methods/fields in the same owning class pair that share a remapped
// descriptor key uniquely.
type UniqueDescriptors struct{}

func NewUniqueDescriptors() *UniqueDescriptors { return &UniqueDescriptors{} }

func (p *UniqueDescriptors) Name() string { return "unique-descriptors" }

func (p *UniqueDescriptors) Run(e *engine.Engine) engine.PassResult {
	for sourceClass, targetClass := range e.Classes.ConfirmedForward() {
		classA, ok := e.EnvA.Class(sourceClass)
		if !ok {
			continue
		}
		classB, ok := e.EnvB.Class(targetClass)
		if !ok {
			continue
		}
		p.voteMethods(e, classA, classB)
		p.voteFields(e, classA, classB)
	}
	return engine.ContinueResult()
}

// methodDescriptorKey builds the spec §4.5 remapped-descriptor key: the
// descriptor with every referenced class name rewritten through resolve
// (or "*" if unmapped), prefixed with STATIC:/INSTANCE: per the method's
// static-ness so that two methods sharing a descriptor shape but
// differing in static-ness never collide.
func methodDescriptorKey(descriptor string, isStatic bool, resolve func(string) (string, bool)) string {
	prefix := "INSTANCE:"
	if isStatic {
		prefix = "STATIC:"
	}
	return prefix + symbol.RemapDescriptor(descriptor, resolve)
}

// voteMethods implements spec §4.5 precisely: still-pending methods of
// each side are keyed by remapped, static-tagged descriptor; a key unique
// on both sides earns a STRONG vote.
func (p *UniqueDescriptors) voteMethods(e *engine.Engine, classA, classB *symbol.Class) {
	keysA := make(map[string][]*symbol.Method)
	for _, m := range classA.Methods {
		if _, confirmed := e.Methods.ConfirmedTarget(m.FullSignature()); confirmed {
			continue
		}
		k := methodDescriptorKey(m.Descriptor, m.IsStatic(), func(name string) (string, bool) {
			return e.Classes.ConfirmedTarget(name)
		})
		keysA[k] = append(keysA[k], m)
	}
	keysB := make(map[string][]*symbol.Method)
	for _, m := range classB.Methods {
		if _, confirmed := e.Methods.ConfirmedSource(m.FullSignature()); confirmed {
			continue
		}
		k := methodDescriptorKey(m.Descriptor, m.IsStatic(), bNamespaceResolve(e))
		keysB[k] = append(keysB[k], m)
	}

	for k, srcs := range keysA {
		if len(srcs) != 1 {
			continue
		}
		tgts, ok := keysB[k]
		if !ok || len(tgts) != 1 {
			continue
		}
		e.VoteMethod(srcs[0].FullSignature(), tgts[0].FullSignature(), match.Strong)
	}
}

// voteFields is the unique-descriptor idiom generalized to fields as an
// enrichment beyond spec §4.5 (which covers methods only): still-pending
// fields of each side keyed by remapped descriptor, voted when unique on
// both sides. Fields carry no static-ness prefix, so a static and an
// instance field with the same remapped descriptor share one key and
// neither counts as unique; the static/instance check itself happens in
// engine.Engine's vote-acceptance gate (spec §4.2).
func (p *UniqueDescriptors) voteFields(e *engine.Engine, classA, classB *symbol.Class) {
	keysA := make(map[string][]*symbol.Field)
	for _, f := range classA.Fields {
		if _, confirmed := e.Fields.ConfirmedTarget(f.FullSignature()); confirmed {
			continue
		}
		k := remapForA(e, f.Descriptor)
		keysA[k] = append(keysA[k], f)
	}
	keysB := make(map[string][]*symbol.Field)
	for _, f := range classB.Fields {
		if _, confirmed := e.Fields.ConfirmedSource(f.FullSignature()); confirmed {
			continue
		}
		k := symbol.RemapDescriptor(f.Descriptor, bNamespaceResolve(e))
		keysB[k] = append(keysB[k], f)
	}

	for k, srcs := range keysA {
		if len(srcs) != 1 {
			continue
		}
		tgts, ok := keysB[k]
		if !ok || len(tgts) != 1 {
			continue
		}
		e.VoteField(srcs[0].FullSignature(), tgts[0].FullSignature(), match.Strong)
	}
}

// remapForA rewrites a descriptor from A's side through the confirmed
// class table, mapping each referenced class to its confirmed B target —
// so an A-side key and a B-side key built by bNamespaceResolve land in the
// same namespace (the confirmed classes' B-side names).
func remapForA(e *engine.Engine, descriptor string) string {
	return symbol.RemapDescriptor(descriptor, func(name string) (string, bool) {
		return e.Classes.ConfirmedTarget(name)
	})
}

// bNamespaceResolve resolves a class name already on B's side: a name that
// is itself a confirmed target keeps its own spelling (it already matches
// what remapForA produces for the corresponding A-side reference); any
// other name is unresolved and becomes the wildcard. Using ConfirmedSource
// only as an existence check — never to rewrite the name to its A-side
// source — is what keeps both sides' keys in one shared (B-side) namespace;
// resolving to the A-side source instead would put every confirmed-class
// reference under a different spelling on each side and the keys would
// never collide (spec §4.5 depends on them colliding).
func bNamespaceResolve(e *engine.Engine) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if _, ok := e.Classes.ConfirmedSource(name); ok {
			return name, true
		}
		return "", false
	}
}
