package handle

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

var (
	errNotInteger = errors.New("not an integer")
	errNotArray   = errors.New("not an array")
	errNotString  = errors.New("not a string")
)

func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// integerValue accepts any JSON number with an integral value that fits in
// int64, so 5 and 5.0 are both 5.
func integerValue(v any) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, errNotInteger
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errNotInteger
	}
	return int64(f), nil
}

func decodeInteger(raw json.RawMessage) (int64, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return 0, err
	}
	return integerValue(v)
}

func decodeIntegers(raw json.RawMessage) ([]int64, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errNotArray
	}
	out := make([]int64, len(arr))
	for i, e := range arr {
		if out[i], err = integerValue(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errNotString
	}
	return s, nil
}
