//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = DispatchSVE
		currentName = "sve"
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
		currentName = "neon"
	default:
		// Fallback to scalar (should never happen on ARMv8+)
		currentLevel = DispatchScalar
		currentName = "scalar"
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = ScalarWidth
	currentName = "scalar"
}

// HasFMA returns true if the CPU supports fused multiply-add instructions.
// Every ARMv8 core does.
func HasFMA() bool {
	return true
}
