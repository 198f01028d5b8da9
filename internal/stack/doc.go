// Package stack implements the tech stack selection engine.
//
// A Catalog is an ordered, read-only list of Template records. The engine
// narrows it along three dimensions in a fixed order:
//
//	frontend -> backend -> auth method
//
// Building blocks:
//
//   - FrontendOptions, BackendOptions, AuthOptions: the valid choices per
//     dimension given the upstream choices (unset values are wildcards).
//   - Resolve: the first template whose three dimensions equal a complete
//     triple.
//   - Selection: the three choices, kept mutually consistent. Changing an
//     upstream choice clears downstream choices that are no longer valid.
//   - Wizard: a three-step stepper over a Selection (GoNext, GoPrev, Reset).
//
// Every operation is total. Choosing a value that is not currently offered,
// stepping past either end, or stepping forward without a choice is a no-op
// reported as false rather than an error, so stale input from a UI can
// never corrupt the state.
//
// The engine is synchronous and not safe for concurrent use; a Wizard is
// owned by exactly one session.
package stack
