package passes

import (
	"github.com/RuneBox/symmap/config"
	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/match"
	"github.com/RuneBox/symmap/symbol"
)

// UniqueConstants implements spec §4.4: for every literal constant key
// that appears in exactly one method (or field initializer) in each
// archive, cast a vote between the two owning symbols, weighted by how
// distinctive the constant is.
type UniqueConstants struct{}

func NewUniqueConstants() *UniqueConstants { return &UniqueConstants{} }

func (p *UniqueConstants) Name() string { return "unique-constants" }

func (p *UniqueConstants) Run(e *engine.Engine) engine.PassResult {
	indexA := indexConstants(e.Config, e.EnvA, methodStillPending(e.Methods, true), fieldStillPending(e.Fields, true))
	indexB := indexConstants(e.Config, e.EnvB, methodStillPending(e.Methods, false), fieldStillPending(e.Fields, false))

	for key, ownersA := range indexA {
		if len(ownersA) != 1 {
			continue
		}
		ownersB, ok := indexB[key]
		if !ok || len(ownersB) != 1 {
			continue
		}
		src, tgt := ownersA[0], ownersB[0]
		weight := constWeight(e.Config, key)
		if src.isMethod && tgt.isMethod {
			e.VoteMethod(src.sig, tgt.sig, weight)
		} else if !src.isMethod && !tgt.isMethod {
			e.VoteField(src.sig, tgt.sig, weight)
		}
	}

	return engine.ContinueResult()
}

type constOwner struct {
	sig      string
	isMethod bool
}

// methodStillPending builds a predicate answering whether a method's full
// signature is still pending (unconfirmed) in t — on the source side that
// means absent from the confirmed-forward map, on the target side absent
// from confirmed-inverse (spec §4.4: "restricted to still-pending
// methods").
func methodStillPending(t *match.Table, isSource bool) func(sig string) bool {
	return func(sig string) bool {
		if isSource {
			_, confirmed := t.ConfirmedTarget(sig)
			return !confirmed
		}
		_, confirmed := t.ConfirmedSource(sig)
		return !confirmed
	}
}

// fieldStillPending is methodStillPending's field-table counterpart.
func fieldStillPending(t *match.Table, isSource bool) func(sig string) bool {
	return methodStillPending(t, isSource)
}

// indexConstants builds key -> owning symbols for every constant in an
// environment, restricted to (a) still-pending methods/fields and (b)
// significant constants (spec §4.4) — insignificant constants are never
// indexed, so they can neither vote themselves nor spoil another
// constant's uniqueness by false collision.
func indexConstants(cfg config.Config, env *symbol.Environment, methodPending, fieldPending func(sig string) bool) map[any][]constOwner {
	idx := make(map[any][]constOwner)
	for sig, m := range env.Methods {
		if !methodPending(sig) {
			continue
		}
		seen := make(map[any]bool)
		for _, c := range m.Constants {
			if !isSignificant(cfg, c) || seen[c.Key()] {
				continue
			}
			seen[c.Key()] = true
			idx[c.Key()] = append(idx[c.Key()], constOwner{sig: sig, isMethod: true})
		}
	}
	for sig, f := range env.Fields {
		if !fieldPending(sig) || f.InitialValue == nil || !isSignificant(cfg, *f.InitialValue) {
			continue
		}
		k := f.InitialValue.Key()
		idx[k] = append(idx[k], constOwner{sig: sig, isMethod: false})
	}
	return idx
}

// isSignificant implements spec §4.4's per-kind significance filter:
// short, low-entropy values are excluded before uniqueness is even
// considered, since "unique" among a pool of trivial constants (common
// words, small counters) is not a meaningful signal.
func isSignificant(cfg config.Config, c symbol.Const) bool {
	switch c.Kind {
	case symbol.ConstString:
		s := c.Str
		if len(s) < cfg.ConstStringMinLength {
			return false
		}
		if s == "true" || s == "false" {
			return false
		}
		return !isAllLowercase(s)
	case symbol.ConstInt, symbol.ConstLong:
		mag := int64(c.Num)
		if mag < 0 {
			mag = -mag
		}
		return mag >= cfg.ConstIntMinMagnitude
	case symbol.ConstFloat, symbol.ConstDouble:
		return c.Num != 0 && c.Num != 1
	case symbol.ConstType:
		return true
	default:
		return false
	}
}

// isAllLowercase reports whether every rune in s is a lowercase ASCII
// letter (spec §4.4: non-significant strings are "all-lowercase
// letters" — plain words, as opposed to sentences, identifiers with
// punctuation, or mixed-case text).
func isAllLowercase(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// constWeight scores a unique constant's significance per spec §4.4:
// longer strings and larger-magnitude numbers are harder to collide with
// by chance, so they carry more weight.
func constWeight(cfg config.Config, key any) int {
	pair, ok := key.([2]any)
	if !ok {
		return match.Medium
	}
	kind, _ := pair[0].(symbol.ConstKind)
	switch kind {
	case symbol.ConstString:
		s, _ := pair[1].(string)
		switch {
		case len(s) < cfg.ConstStringMinLength:
			return match.Weak
		case len(s) > cfg.ConstStringVeryLongLength:
			return match.VeryStrong
		case len(s) > cfg.ConstStringStrongLength:
			return match.Strong
		default:
			return match.Medium
		}
	case symbol.ConstInt, symbol.ConstLong:
		v, _ := pair[1].(float64)
		mag := int64(v)
		if mag < 0 {
			mag = -mag
		}
		switch {
		case mag < cfg.ConstIntMinMagnitude:
			return match.Weak
		case mag > cfg.ConstIntStrongMagnitude:
			return match.Strong
		default:
			return match.Medium
		}
	case symbol.ConstType:
		return match.Strong
	default:
		return match.Medium
	}
}
