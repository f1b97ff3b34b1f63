//go:build !purego && (amd64 || arm64)

package all

import _ "github.com/cwbudde/algo-vecbench/internal/accel/vecmath"
