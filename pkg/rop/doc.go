// Package rop implements railway-oriented composition around Result[T], a
// value holding either a success payload or an error.
//
// Constructors:
// - Ok/Fail/FailErr: build a Result directly
// - Of: run a function returning (T, error), capturing errors and panics
//
// Combinators:
// - Then/Map: continue with a plain function, capturing its failures
// - ThenResult: continue with a function that already returns a Result
// - OnFail: observe a failure without changing it
// - ReplaceError/RefineError: rewrite or prefix the failure message
//
// A failed Result short-circuits every combinator: the continuation is not
// called and the message reaches the end of the chain unchanged.
package rop
