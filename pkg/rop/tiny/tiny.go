package tiny

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Ok(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error), like signing or I/O
// calls. Errors and panics become failures.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.AndValidate(c.ctx, c.res, validate)}
}

// Check fails the chain with err when check reports false.
func (c Chain[T]) Check(check func(ctx context.Context, t T) bool, err error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.AndCheck(c.ctx, c.res, check, err)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	solo.DoubleTee(c.ctx, c.res, onSuccess, onFailure)
	return c
}

// Or returns the first successful chain, or the first failure when none
// succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
