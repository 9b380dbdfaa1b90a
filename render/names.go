// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when decoding an enumeration name that
// does not exist.
var ErrUnknownName = errors.New("unknown name")

func lookupName(kind string, names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("render: %s %q: %w", kind, name, ErrUnknownName)
}

func unknownValue(kind string, v int) error {
	return fmt.Errorf("render: invalid %s value %d", kind, v)
}
