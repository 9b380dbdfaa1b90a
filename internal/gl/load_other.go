// SPDX-License-Identifier: Unlicense OR MIT

//go:build !darwin && !freebsd && !linux

package gl

import (
	"errors"
	"runtime"
)

func LoadFunctions(cfg Config) (*Functions, error) {
	return nil, errors.New("gl: no GL loader for " + runtime.GOOS)
}
