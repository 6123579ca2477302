package diet

import (
	"context"

	"github.com/NguyenLe1605/gdiet"
)

// Collect receives all values from the provided channel and returns a Diet containing them.
// Collect blocks the caller until the input channel is closed or the provided context is cancelled.
// An error is returned if and only if the provided context was cancelled before the input channel was closed; the
// Diet returned alongside it holds every value received up to that point.
func Collect[T gdiet.Integer](ctx context.Context, in <-chan T) (*Diet[T], error) {
	result := &Diet[T]{}
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case v, ok := <-in:
			if !ok {
				return result, nil
			}
			result.Insert(v)
		}
	}
}
