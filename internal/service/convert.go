package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports that Input is not a signed 64-bit integer in Base.
type ParseError struct {
	Input string
	Base  int
	Err   error
}

func (e *ParseError) Error() string {
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		return fmt.Sprintf("cannot parse %q as base %d integer: %v", e.Input, e.Base, numErr.Err)
	}
	return fmt.Sprintf("cannot parse %q as base %d integer: %v", e.Input, e.Base, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DecimalToHex formats a base-10 int64 as upper-case hex. Negative values
// come out as their 64-bit two's-complement pattern, so "-1" is
// "FFFFFFFFFFFFFFFF".
func DecimalToHex(value string) (string, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return "", &ParseError{Input: value, Base: 10, Err: err}
	}
	return strings.ToUpper(strconv.FormatUint(uint64(n), 16)), nil
}

// HexToDecimal parses a base-16 int64 and formats it in base 10. A leading
// sign is accepted ("-ff" is -255); a "0x" prefix is not. Case-insensitive.
func HexToDecimal(value string) (string, error) {
	n, err := strconv.ParseInt(value, 16, 64)
	if err != nil {
		return "", &ParseError{Input: value, Base: 16, Err: err}
	}
	return strconv.FormatInt(n, 10), nil
}
