// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T] and carry a context.Context through to each stage function.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/Try: transform successful values, capturing errors and panics
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
