// Package passes implements the heuristic and pipeline-control passes
// described in spec §4.3–§4.8: anchor matching, unique-constant voting,
// unique-descriptor voting, structural voting, the vote collector
// (promotion), and the conditional loop operator.
package passes

import (
	"sort"

	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/symbol"
	"go.uber.org/zap"
)

// Anchor implements spec §4.3: directly confirm every non-obfuscated
// class in A that also exists, non-obfuscated, in B by binary name, then
// directly confirm every non-obfuscated method/field pair within each
// matched class.
type Anchor struct{}

func NewAnchor() *Anchor { return &Anchor{} }

func (p *Anchor) Name() string { return "anchor" }

func (p *Anchor) Run(e *engine.Engine) engine.PassResult {
	names := make([]string, 0, len(e.EnvA.Classes))
	for name := range e.EnvA.Classes {
		names = append(names, name)
	}
	sort.Strings(names)

	matched := 0
	for _, name := range names {
		classA := e.EnvA.Classes[name]
		if classA.Obfuscated() {
			continue
		}
		classB, ok := e.EnvB.Classes[name]
		if !ok || classB.Obfuscated() {
			continue
		}
		if !e.ConfirmDirectClass(name, name) {
			continue
		}
		matched++
		p.anchorMethods(e, classA, classB)
		p.anchorFields(e, classA, classB)
	}

	e.Log.Info("anchor pass complete", zap.Int("classesConfirmed", matched))
	return engine.ContinueResult()
}

func (p *Anchor) anchorMethods(e *engine.Engine, classA, classB *symbol.Class) {
	targets := make(map[string]*symbol.Method, len(classB.Methods))
	for _, m := range classB.Methods {
		if !m.Obfuscated() {
			targets[m.Name+m.Descriptor] = m
		}
	}

	sources := make([]*symbol.Method, 0, len(classA.Methods))
	for _, m := range classA.Methods {
		if !m.Obfuscated() {
			sources = append(sources, m)
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].FullSignature() < sources[j].FullSignature() })

	for _, m := range sources {
		if tgt, ok := targets[m.Name+m.Descriptor]; ok {
			e.ConfirmDirectMethod(m.FullSignature(), tgt.FullSignature())
		}
	}
}

func (p *Anchor) anchorFields(e *engine.Engine, classA, classB *symbol.Class) {
	targets := make(map[string]*symbol.Field, len(classB.Fields))
	for _, f := range classB.Fields {
		if !f.Obfuscated() {
			targets[f.Name+":"+f.Descriptor] = f
		}
	}

	sources := make([]*symbol.Field, 0, len(classA.Fields))
	for _, f := range classA.Fields {
		if !f.Obfuscated() {
			sources = append(sources, f)
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].FullSignature() < sources[j].FullSignature() })

	for _, f := range sources {
		if tgt, ok := targets[f.Name+":"+f.Descriptor]; ok {
			e.ConfirmDirectField(f.FullSignature(), tgt.FullSignature())
		}
	}
}
