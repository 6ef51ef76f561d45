// Package eligibility decides which items or outfits are cooling down under a
// user's no-repeat policy.
//
// Everything here is a pure computation over an already-materialized snapshot
// (resolved policy plus wear history). Nothing performs I/O, so results depend
// only on the inputs: the set of non-retracted wear events inside the window
// (today - days, today], independent of the order they are supplied in.
//
// Snapshots are best-effort. A query may not see a wear that another device
// wrote a moment earlier; callers accept that rather than locking history.
package eligibility
