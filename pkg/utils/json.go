package utils

import (
	"encoding/json"
	"io"
)

func Unmarshal[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func UnmarshalReader[T any](r io.Reader) (*T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// for values that cannot fail to marshal (maps and structs of plain types)
func MustMarshal(v any) []byte {
	data, _ := json.Marshal(v)
	return data
}
