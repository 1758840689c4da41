// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds accepted by the conversions below.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64
}

// split reports the value as either a signed or unsigned 64-bit quantity.
func split[T Integer](v T) (signed int64, unsigned uint64, isSigned bool, err error) {
	switch value := any(v).(type) {
	case int:
		return int64(value), 0, true, nil
	case int32:
		return int64(value), 0, true, nil
	case int64:
		return value, 0, true, nil
	case uint:
		return 0, uint64(value), false, nil
	case uint16:
		return 0, uint64(value), false, nil
	case uint32:
		return 0, uint64(value), false, nil
	case uint64:
		return 0, value, false, nil
	default:
		return 0, 0, false, fmt.Errorf("unsupported type %T", v)
	}
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
// Block timestamps and transaction counts go through here.
func Uint32[T Integer](v T) (uint32, error) {
	s, u, signed, err := split(v)
	if err != nil {
		return 0, err
	}
	if signed {
		if s < 0 || s > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
		return uint32(s), nil
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(u), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	s, u, signed, err := split(v)
	if err != nil {
		return 0, err
	}
	if signed {
		if s < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(s), nil
	}
	return u, nil
}

// Int32 converts to the int32 used for block heights, rejecting negatives.
func Int32[T Integer](v T) (int32, error) {
	s, u, signed, err := split(v)
	if err != nil {
		return 0, err
	}
	if signed {
		if s < 0 || s > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of height range", v)
		}
		return int32(s), nil
	}
	if u > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of height range", v)
	}
	return int32(u), nil
}

// Uint16 converts to uint16, used for miner instance numbers.
func Uint16[T Integer](v T) (uint16, error) {
	s, u, signed, err := split(v)
	if err != nil {
		return 0, err
	}
	if signed {
		if s < 0 || s > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
		return uint16(s), nil
	}
	if u > math.MaxUint16 {
		return 0, fmt.Errorf("value %d out of uint16 range", v)
	}
	return uint16(u), nil
}
