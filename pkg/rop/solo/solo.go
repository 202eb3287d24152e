package solo

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.FailErr[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate checks a successful input. An input that already failed is
// returned as is and validate is not called.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.MustValue()); !isValid {
			return rop.Fail[T](errMsg)
		}
	}
	return input
}

// AndCheck is AndValidate for predicates that report a ready-made error.
func AndCheck[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) bool, err error) rop.Result[T] {

	if input.IsSuccess() && !check(ctx, input.MustValue()) {
		return rop.FailErr[T](err)
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.ThenResult(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.Then(input, func(r In) (Out, error) {
		return onTryExecute(ctx, r)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.MustValue())
		}
	} else if onError != nil {
		onError(ctx, input.Err())
	}

	return input
}

// FailOnError runs maybeErr for its error only; the value is kept on success.
// Errors and panics are captured like in Try.
func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return rop.ThenResult(input, func(in T) rop.Result[T] {
		return rop.Of(func() (T, error) {
			return in, maybeErr(ctx, in)
		})
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.MustValue())
	}
	return onError(ctx, input.Err())
}
