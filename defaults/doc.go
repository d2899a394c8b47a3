// Package defaults removes the shared-mutable-default trap from callables
// under the bind calling convention.
//
// A default value stored in a signature.Signature is constructed once and
// handed out by bind.Resolve to every call that omits the parameter. When
// that value is a container, one call's mutation leaks into the next —
// unrelated invocations silently share state.
//
// Protect is not just a utility to copy defaults.
// Protect is a tool that *forces the developer to ask*:
//
//	→ "Which of my defaults are mutable?"
//	→ "Do separate calls really start from the same state?"
//
// The wrapper inspects the signature once, at construction time, to find the
// defaulted parameters to track. On every call it checks which tracked
// parameters the caller left unsupplied and merges a fresh copy of each
// default into the keyword arguments before delegating. Caller-supplied
// values are never copied; construction fails eagerly for names that are not
// defaulted parameters of the callable.
//
// Three copy strategies are available, chosen once at construction:
//   - shallow copy (the default): a new outer container, shared leaves;
//   - WithDeepCopy: recursive copies of nested containers;
//   - WithCopyFunc: a caller-supplied copy function, for values the built-in
//     strategies cannot duplicate faithfully.
//
// The wrapper holds no mutable state of its own: the tracked parameter set is
// read-only after construction, so concurrent calls are safe as long as the
// copy function and the wrapped callable are.
package defaults
