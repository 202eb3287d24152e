// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values whose type stays the same across stages.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Validate/Check: turn a predicate into a failure on invalid input
// - Map: transform the value in place
// - Ensure: trigger side effects without changing the result
// - Or: fall back to an alternative chain
// - Finally: reduce to a concrete value via handlers
//
// The file-send pipeline uses Chain[Document] for its preparation stages.
package tiny
