package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBool is returned by ParseBool for unrecognised input.
var ErrInvalidBool = errors.New("config: invalid boolean value")

// ParseBool accepts true/1/yes and false/0/no in any letter case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
	}
}

// BoolFlag is a flag.Value backed by ParseBool. It requires an explicit value
// (-indexing_1=no), matching the original argparse surface.
type BoolFlag struct {
	Value *bool
}

// String implements flag.Value.
func (b BoolFlag) String() string {
	if b.Value == nil {
		return "false"
	}
	return strconv.FormatBool(*b.Value)
}

// Set implements flag.Value.
func (b BoolFlag) Set(s string) error {
	v, err := ParseBool(s)
	if err != nil {
		return err
	}
	*b.Value = v
	return nil
}

// IntList is a flag.Value for comma or space separated integers, e.g. "1,2".
type IntList struct {
	Value *[]int
}

// String implements flag.Value.
func (l IntList) String() string {
	if l.Value == nil {
		return ""
	}
	parts := make([]string, len(*l.Value))
	for i, v := range *l.Value {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value. Brackets are tolerated so "[1, 2]" also parses.
func (l IntList) Set(s string) error {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("config: invalid integer %q in list", f)
		}
		out = append(out, v)
	}
	*l.Value = out
	return nil
}
