package semantics

import "errors"

// ErrUnsupportedSemantics is returned by Credulous/Skeptical for a
// Semantics value outside {Complete, Preferred, Stable} — Grounded has no
// skeptical task and is handled separately via GroundedCredulous.
var ErrUnsupportedSemantics = errors.New("semantics: unsupported semantics for this task")
