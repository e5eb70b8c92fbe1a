// Package errors provides the structured error type used across journey.
//
// Every layer returns *Error values carrying a Code:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Repositories return domain codes (NotFound, AlreadyExists) and wrap storage
// failures with Wrap, which keeps the code of a wrapped *Error and defaults to
// Internal otherwise. Orchestrators validate input with ValidationBuilder and
// return FailedPrecondition when the game state forbids an action, or Aborted
// when another request holds the character. Handlers call ToGRPCError, and
// clients recover the original code and metadata with FromGRPCError.
package errors
