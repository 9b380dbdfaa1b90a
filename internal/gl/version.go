// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ParseGLVersion parses a GL_VERSION string into its major and minor
// numbers. The second result reports an OpenGL ES version.
func ParseGLVersion(glVer string) (ver [2]int, es bool, err error) {
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, true, nil
	} else if _, err := fmt.Sscanf(strings.TrimSpace(glVer), "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, false, nil
	}
	return ver, false, fmt.Errorf("gl: failed to parse OpenGL version (%s)", glVer)
}
