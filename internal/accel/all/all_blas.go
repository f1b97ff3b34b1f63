//go:build !noblas

package all

import _ "github.com/cwbudde/algo-vecbench/internal/accel/blas"
