package utils

import (
	"fmt"
	"reflect"
)

var ErrNilParam = fmt.Errorf("cast: nil value")

// SafeCast narrows an any (cache entries mostly) to T with a typed error
// instead of a panic.
func SafeCast[T any](value any) (T, error) {
	var zero T

	if value == nil {
		return zero, ErrNilParam
	}

	v, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cast: have %s, want %s", reflect.TypeOf(value), reflect.TypeOf(zero))
	}

	return v, nil
}
