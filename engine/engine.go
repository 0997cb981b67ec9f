// Package engine implements the Merge Engine (spec §4.1): the
// orchestrator owning both archive environments, the three match tables,
// the linear pass pipeline, and the iteration/convergence control. All
// cross-entry invariants are enforced here or delegated to package match;
// passes never mutate match state directly except through the methods on
// *Engine, mirroring spec §9's "mutable shared state is centralized in
// the engine" design note.
package engine

import (
	"github.com/RuneBox/symmap/config"
	"github.com/RuneBox/symmap/match"
	"github.com/RuneBox/symmap/metrics"
	"github.com/RuneBox/symmap/symbol"
	"github.com/luxfi/log"
	"go.uber.org/zap"
)

// Engine is the voting-based iterative matching orchestrator described in
// spec §4.1.
type Engine struct {
	EnvA, EnvB *symbol.Environment

	Classes *match.Table
	Methods *match.Table
	Fields  *match.Table

	Config  config.Config
	Log     log.Logger
	Metrics *metrics.Metrics

	passes []Pass

	changesThisIteration int
	changesTotal         int
	iterations           int
}

// New builds an Engine over two loaded environments.
func New(envA, envB *symbol.Environment, cfg config.Config, logger log.Logger, m *metrics.Metrics) *Engine {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	if m == nil {
		m = metrics.NoOp()
	}
	return &Engine{
		EnvA:    envA,
		EnvB:    envB,
		Classes: match.NewTable(),
		Methods: match.NewTable(),
		Fields:  match.NewTable(),
		Config:  cfg,
		Log:     logger,
		Metrics: m,
	}
}

// AddPass appends a stage to the linear pipeline (spec §4.1 add_pass).
func (e *Engine) AddPass(p Pass) {
	e.passes = append(e.passes, p)
}

// ChangesThisIteration is the running count of confirmations made since
// the current iteration began (spec §4.8, "changes_last_cycle").
func (e *Engine) ChangesThisIteration() int { return e.changesThisIteration }

// ResetChangesThisIteration zeroes the per-iteration change counter. Only
// the Conditional Loop Operator pass should call this (spec §4.8: reset
// at the start of each iteration, which in this pipeline's shape is when
// the loop operator — the last stage of the looped section — runs).
func (e *Engine) ResetChangesThisIteration() { e.changesThisIteration = 0 }

// Iterations is the number of accepted jumps so far.
func (e *Engine) Iterations() int { return e.iterations }

// ------------------------------------------------------------------
// Voting API (spec §4.1 vote_class / vote_method / vote_field)
// ------------------------------------------------------------------

// VoteClass casts a weighted vote for (src, tgt) in the class table.
// Classes have no per-vote compatibility filter (spec §4.2).
func (e *Engine) VoteClass(src, tgt string, weight int) bool {
	accepted := e.Classes.Vote(src, tgt, weight, nil)
	e.recordVote("class", accepted)
	return accepted
}

// VoteMethod casts a weighted vote for (src, tgt) in the method table,
// subject to the static/instance, constructor-marker and owner-lock
// filters (spec §4.2).
func (e *Engine) VoteMethod(src, tgt string, weight int) bool {
	accepted := e.Methods.Vote(src, tgt, weight, e.methodFilter)
	e.recordVote("method", accepted)
	return accepted
}

// VoteField casts a weighted vote for (src, tgt) in the field table,
// subject to the static/instance and owner-lock filters (spec §4.2).
func (e *Engine) VoteField(src, tgt string, weight int) bool {
	accepted := e.Fields.Vote(src, tgt, weight, e.fieldFilter)
	e.recordVote("field", accepted)
	return accepted
}

func (e *Engine) recordVote(kind string, accepted bool) {
	if accepted {
		e.Metrics.VotesCast.WithLabelValues(kind).Inc()
		return
	}
	e.Metrics.VotesRejected.WithLabelValues(kind, "incompatible-or-claimed").Inc()
}

func (e *Engine) methodFilter(entry *match.Entry, target string) bool {
	srcM, ok := e.EnvA.Method(entry.Source)
	if !ok {
		return false
	}
	tgtM, ok := e.EnvB.Method(target)
	if !ok {
		return false
	}
	if srcM.IsStatic() != tgtM.IsStatic() {
		return false
	}
	if srcM.IsConstructorLike() != tgtM.IsConstructorLike() {
		return false
	}
	if lock := entry.OwnerLock(); lock != "" && tgtM.Owner != lock {
		return false
	}
	return true
}

func (e *Engine) fieldFilter(entry *match.Entry, target string) bool {
	srcF, ok := e.EnvA.Field(entry.Source)
	if !ok {
		return false
	}
	tgtF, ok := e.EnvB.Field(target)
	if !ok {
		return false
	}
	if srcF.IsStatic() != tgtF.IsStatic() {
		return false
	}
	if lock := entry.OwnerLock(); lock != "" && tgtF.Owner != lock {
		return false
	}
	return true
}

// ------------------------------------------------------------------
// Confirmation API (spec §4.1 confirm_*)
// ------------------------------------------------------------------

// ConfirmClass promotes a pending class entry, then propagates the
// owner-lock to every pending method/field entry owned by the source
// class (spec §3, §4.1).
func (e *Engine) ConfirmClass(source string) string {
	target := e.Classes.Confirm(source)
	e.onClassConfirmed(source, target)
	return target
}

// ConfirmDirectClass confirms source->target immediately without voting
// (spec §4.3, anchor pass), applying the same owner-lock propagation and
// bookkeeping as ConfirmClass. Returns false if target is already claimed
// by a different source.
func (e *Engine) ConfirmDirectClass(source, target string) bool {
	if !e.Classes.ConfirmDirect(source, target) {
		return false
	}
	e.onClassConfirmed(source, target)
	return true
}

func (e *Engine) onClassConfirmed(source, target string) {
	e.changesThisIteration++
	e.changesTotal++
	e.Metrics.Confirmations.WithLabelValues("class").Inc()
	e.Log.Info("confirmed class", zap.String("source", source), zap.String("target", target))

	class, ok := e.EnvA.Class(source)
	if !ok {
		return
	}
	for _, m := range class.Methods {
		e.Methods.ApplyOwnerLock(m.FullSignature(), target, e.methodOwnerOf)
	}
	for _, f := range class.Fields {
		e.Fields.ApplyOwnerLock(f.FullSignature(), target, e.fieldOwnerOf)
	}
}

func (e *Engine) methodOwnerOf(target string) (string, bool) {
	m, ok := e.EnvB.Method(target)
	if !ok {
		return "", false
	}
	return m.Owner, true
}

func (e *Engine) fieldOwnerOf(target string) (string, bool) {
	f, ok := e.EnvB.Field(target)
	if !ok {
		return "", false
	}
	return f.Owner, true
}

// ConfirmMethod promotes a pending method entry (spec §4.1).
func (e *Engine) ConfirmMethod(source string) string {
	target := e.Methods.Confirm(source)
	e.changesThisIteration++
	e.changesTotal++
	e.Metrics.Confirmations.WithLabelValues("method").Inc()
	e.Log.Debug("confirmed method", zap.String("source", source), zap.String("target", target))
	return target
}

// ConfirmDirectMethod confirms source->target immediately (anchor pass).
func (e *Engine) ConfirmDirectMethod(source, target string) bool {
	if !e.Methods.ConfirmDirect(source, target) {
		return false
	}
	e.changesThisIteration++
	e.changesTotal++
	e.Metrics.Confirmations.WithLabelValues("method").Inc()
	return true
}

// ConfirmField promotes a pending field entry (spec §4.1).
func (e *Engine) ConfirmField(source string) string {
	target := e.Fields.Confirm(source)
	e.changesThisIteration++
	e.changesTotal++
	e.Metrics.Confirmations.WithLabelValues("field").Inc()
	e.Log.Debug("confirmed field", zap.String("source", source), zap.String("target", target))
	return target
}

// ConfirmDirectField confirms source->target immediately (anchor pass).
func (e *Engine) ConfirmDirectField(source, target string) bool {
	if !e.Fields.ConfirmDirect(source, target) {
		return false
	}
	e.changesThisIteration++
	e.changesTotal++
	e.Metrics.Confirmations.WithLabelValues("field").Inc()
	return true
}
