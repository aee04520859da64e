package glint

// Handler is the capability an evaluation uses to perform effects and to
// scope them transactionally. Composition (Env, the loader's wrapping
// handler) is delegation: a wrapping Handler stores the inner Handler and
// forwards Try/Commit/Abort to it unless it has its own reason to intercept
// them, mirroring how the teacher's Scheduler and addonmaps structs hold an
// inner capability by field rather than by embedding behavior through
// inheritance.
type Handler interface {
	// Eff processes one effect request, returning its result and whether the
	// request succeeded.
	Eff(v Value) (Value, bool)

	// Try opens a new, nestable transaction frame. Effects performed after
	// Try are tentative until the matching Commit or Abort.
	Try()
	// Commit folds the top transaction frame's tentative effects into its
	// parent frame, making them observable there.
	Commit()
	// Abort discards the top transaction frame and any effects performed
	// within it, restoring the handler's observable state to the moment of
	// the matching Try.
	Abort()
}

// NopHandler performs no effects: every Eff call fails. Try/Commit/Abort are
// no-ops. It is useful as the innermost handler when a program issues no
// effects, or in tests that only exercise Cond/Loop backtracking.
type NopHandler struct{}

// Eff always fails.
func (NopHandler) Eff(Value) (Value, bool) { return Value{}, false }

// Try is a no-op.
func (NopHandler) Try() {}

// Commit is a no-op.
func (NopHandler) Commit() {}

// Abort is a no-op.
func (NopHandler) Abort() {}

// Delegating is an embeddable Handler that forwards every call to Inner. It
// is meant to be embedded by a wrapping handler that only needs to intercept
// Eff (as Env does) or only Try/Commit/Abort, letting Go's struct embedding
// supply the rest for free.
type Delegating struct {
	Inner Handler
}

// Eff forwards to Inner.
func (d Delegating) Eff(v Value) (Value, bool) { return d.Inner.Eff(v) }

// Try forwards to Inner.
func (d Delegating) Try() { d.Inner.Try() }

// Commit forwards to Inner.
func (d Delegating) Commit() { d.Inner.Commit() }

// Abort forwards to Inner.
func (d Delegating) Abort() { d.Inner.Abort() }

// LogHandler is the log-capturing handler used in tests (§4.5, §8.2 scenario
// 3 of the specification): it buffers effect requests tagged with the label
// "log" in a per-frame queue. Commit concatenates the top frame onto its
// parent; Abort drops the top frame, so log entries recorded inside a failed
// Cond/Loop predicate are never observed. Any other effect label fails,
// standing in for an effect the handler does not implement.
type LogHandler struct {
	frames [][]Value
}

// NewLogHandler returns a LogHandler with one (committed) root frame.
func NewLogHandler() *LogHandler {
	return &LogHandler{frames: [][]Value{nil}}
}

// Eff accepts a request shaped Variant("log", payload), appending payload to
// the current frame and succeeding with Unit. Any other request fails.
func (h *LogHandler) Eff(v Value) (Value, bool) {
	label, payload, ok := AsVariant(v)
	if !ok || label != "log" {
		return Value{}, false
	}
	top := len(h.frames) - 1
	h.frames[top] = append(h.frames[top], payload)
	return Unit, true
}

// Try pushes a new tentative frame.
func (h *LogHandler) Try() {
	h.frames = append(h.frames, nil)
}

// Commit folds the top frame into its parent.
func (h *LogHandler) Commit() {
	top := len(h.frames) - 1
	h.frames[top-1] = append(h.frames[top-1], h.frames[top]...)
	h.frames = h.frames[:top]
}

// Abort discards the top frame.
func (h *LogHandler) Abort() {
	h.frames = h.frames[:len(h.frames)-1]
}

// Log returns the committed log entries in the root frame, in the order
// they were recorded.
func (h *LogHandler) Log() []Value {
	return h.frames[0]
}
