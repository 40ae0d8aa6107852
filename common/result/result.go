// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result carries the outcome of an operation as a single value.
package result

import "errors"

// Result holds either the value of a successful operation or the error it
// failed with. It allows outcomes to be passed through channels and futures
// as a single value.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of wraps the typical (value, error) return pair of a function.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Get returns the value and error contained in the Result. Using this function
// forces the caller to handle potential errors.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Collect unpacks a list of results. The values of all successful results are
// returned in order, together with the joined errors of all failed ones.
func Collect[T any](results []Result[T]) ([]T, error) {
	values := make([]T, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		values = append(values, r.value)
	}
	return values, errors.Join(errs...)
}
