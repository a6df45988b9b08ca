package api

// Result carries either the fetched data or the reason the fetch failed.
// Data is an empty, non-nil collection when Err is set.
type Result[T any] struct {
	Data T
	Err  error
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

func (r Result[T]) OrEmpty() T {
	return r.Data
}
