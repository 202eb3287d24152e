package rop

// Of runs compute and wraps its outcome. A returned error or a panic becomes
// a failure; the message is the first errorOverride when one is given, even
// an empty one, otherwise the error's own message. Of is the only place panics raised by
// pipeline stages are recovered.
func Of[T any](compute func() (T, error), errorOverride ...string) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = fail[T](recovered(v), errorOverride)
		}
	}()

	value, err := compute()
	if err != nil {
		return fail[T](err, errorOverride)
	}
	return Ok(value)
}

func fail[T any](err error, override []string) Result[T] {
	if len(override) > 0 {
		return Fail[T](override[0])
	}
	return FailErr[T](err)
}

// Then continues a successful Result with a function that may return an
// error or panic; both are captured through Of. A failure is passed on with
// its message untouched.
func Then[In, Out any](input Result[In], continuation func(In) (Out, error)) Result[Out] {
	if input.IsFailure() {
		return FailErr[Out](input.err)
	}
	return Of(func() (Out, error) {
		return continuation(input.result)
	})
}

// Map is Then for continuations that cannot return an error.
func Map[In, Out any](input Result[In], continuation func(In) Out) Result[Out] {
	return Then(input, func(in In) (Out, error) {
		return continuation(in), nil
	})
}

// ThenResult continues a successful Result with a function that reports its
// own failures. Its Result is returned as is and panics are not recovered.
func ThenResult[In, Out any](input Result[In], continuation func(In) Result[Out]) Result[Out] {
	if input.IsFailure() {
		return FailErr[Out](input.err)
	}
	return continuation(input.result)
}
