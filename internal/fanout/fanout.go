// Package fanout runs bounded concurrent work and collects per-task outcomes.
//
// Map keeps one Result per input in input order, so callers decide locally
// whether a failure matters. All is the all-or-nothing counterpart.
package fanout

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// Result is the outcome of one task.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the task succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Map applies fn to every input with at most limit tasks in flight.
// A limit below 1 means one goroutine per input.
func Map[In, Out any](ctx context.Context, inputs []In, limit int, fn func(context.Context, In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	p := pool.New()
	if limit > 0 {
		p = p.WithMaxGoroutines(limit)
	}
	for i, in := range inputs {
		p.Go(func() {
			v, err := fn(ctx, in)
			results[i] = Result[Out]{Value: v, Err: err}
		})
	}
	p.Wait()

	return results
}

// Successes returns the values of successful results, preserving order.
func Successes[T any](results []Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.OK() {
			out = append(out, r.Value)
		}
	}
	return out
}

// Failures counts failed results.
func Failures[T any](results []Result[T]) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// All runs every task concurrently and returns the first error, canceling the
// context passed to the remaining tasks when one fails.
func All(ctx context.Context, tasks ...func(context.Context) error) error {
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for _, task := range tasks {
		p.Go(task)
	}
	return p.Wait()
}
