//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures have no detection; the kernels still
	// run with the default lane-group width.
	currentLevel = DispatchScalar
	currentName = "scalar"
	if NoSimdEnv() {
		currentWidth = ScalarWidth
	}
}

// HasFMA returns false when no feature detection is available.
func HasFMA() bool {
	return false
}
