// Package bindfn lifts ordinary typed Go functions into the bind calling
// convention.
//
// The I1O1 to I4O1 family adapts a function of fixed arity into a bind.Fn:
// the signature maps call arguments to parameter slots by name and position,
// omitted defaulted parameters are filled from the signature, and each slot
// is type-asserted before the typed function runs. Adapter construction
// checks the declared signature against the function's reflected arity, so a
// mismatched descriptor fails before the first call.
//
// Keyword-only parameters occupy the trailing slots of the typed function, in
// declared order.
//
// An adapted function inherits the shared-default trap from bind.Resolve;
// pass it through defaults.Protect to remove it.
package bindfn
