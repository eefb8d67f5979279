// Package errors provides the structured error type used across osrs-random.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. The CLI layer decides how to present them; lower layers only
// classify.
//
// Creating errors:
//
//	err := errors.NotFound("release not cached")
//	err := errors.InvalidArgumentf("unknown skill policy: %s", policy)
//
// Adding metadata:
//
//	err := errors.FailedPrecondition("no categories left to pick from").
//	    WithMeta("reason", "all_excluded")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := cache.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to cache release")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // cache miss
//	}
//
// Validation of component configs goes through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
//
// # Error Codes
//
//   - NotFound: lookup missed (cache miss, unknown category)
//   - InvalidArgument: bad input or config
//   - FailedPrecondition: the request cannot be satisfied in the current state
//   - Unavailable: a remote dependency could not be reached
//   - ResourceExhausted: a remote dependency rate limited us
//   - DeadlineExceeded / Canceled: context ended
//   - Internal: anything else
package errors
