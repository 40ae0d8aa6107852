// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Futures provide a simple abstraction for results of work running in the
// background. A Future is a placeholder for a value that is not yet available,
// fulfilled through its Promise by the goroutine doing the work.
//
// The producer side of a Future typically looks as follows:
//
//	promise, future := future.Create[T]()
//	go func() {
//	   promise.Fulfill(someOperation())
//	}()
//	return future
//
// Consumers wait for a single Future using Await, or for a list of them using
// AwaitAll.
package future

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	C chan<- T
}

// Future represents a placeholder for a value that will be available in the
// future. It can be awaited to retrieve the result once it is fulfilled.
type Future[T any] struct {
	C <-chan T
}

// Create initializes a new Promise and Future pair.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan T, 1)
	return Promise[T]{C: ch}, Future[T]{C: ch}
}

// Run starts fn in a new goroutine and returns a Future for its result.
func Run[T any](fn func() T) Future[T] {
	promise, future := Create[T]()
	go func() {
		promise.Fulfill(fn())
	}()
	return future
}

// Fulfill fulfills the Promise with the given value. A Promise can only be
// fulfilled once.
func (p Promise[T]) Fulfill(value T) {
	p.C <- value
	close(p.C)
}

// Await blocks until the Future is fulfilled and returns the contained value.
// Futures can only be consumed once.
func (f Future[T]) Await() T {
	return <-f.C
}

// AwaitAll waits for all given futures and returns their values in order.
func AwaitAll[T any](futures []Future[T]) []T {
	res := make([]T, 0, len(futures))
	for _, f := range futures {
		res = append(res, f.Await())
	}
	return res
}

// Then creates a new Future by applying the given transformation function to
// the result of the original Future once it is fulfilled.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	return Run(func() B {
		return transform(f.Await())
	})
}
