package loader

import "github.com/glintlang/glint"

// loaderHandler is the delegating handler §4.5 describes: it intercepts
// load:<name> and log:<record>, forwarding every other effect to Inner
// unchanged, and forwards try/commit/abort unchanged in all cases since
// loader state (§3.4) is not itself transactional.
type loaderHandler struct {
	glint.Delegating
	l *Loader
}

func (h *loaderHandler) Eff(v glint.Value) (glint.Value, bool) {
	label, payload, ok := glint.AsVariant(v)
	if !ok {
		return h.Delegating.Eff(v)
	}
	switch label {
	case "load":
		name, ok := payload.SymString()
		if !ok {
			return glint.Value{}, false
		}
		return h.l.Load(name)

	case "log":
		rec, isRec := payload.AsRecord()
		if !isRec {
			return h.Delegating.Eff(v)
		}
		file := glint.NewBits(glint.Sym(h.l.currentFile()))
		augmented := glint.NewRecord(rec.Put(glint.Sym("file"), file))
		return h.Delegating.Eff(glint.Variant("log", augmented))

	default:
		return h.Delegating.Eff(v)
	}
}
