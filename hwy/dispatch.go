package hwy

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set detected on this machine.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

const (
	// DefaultWidth is the lane-group width in bytes used by all kernels
	// unless HWY_NO_SIMD is set: 8 float64 lanes.
	DefaultWidth = 64

	// ScalarWidth is the width used under HWY_NO_SIMD: one float64 lane.
	ScalarWidth = 8
)

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the lane-group width in bytes. Kernels are written
// against MaxLanes, so every width produces the same results up to the
// order of floating-point additions.
var currentWidth = DefaultWidth

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set detected on this machine.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the lane-group width in bytes.
// For example: 64 by default, 8 under HWY_NO_SIMD.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, all kernels run with a single float64 lane regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// ValidWidth reports whether bytes is a supported lane-group width:
// a power of two between ScalarWidth and DefaultWidth.
func ValidWidth(bytes int) bool {
	return bytes >= ScalarWidth && bytes <= DefaultWidth && bytes&(bytes-1) == 0
}

// ForceWidth overrides the lane-group width and returns a function that
// restores the previous width. It is meant for tests and command-line
// callers; it is not safe to call while kernels run on other goroutines.
//
// Example:
//
//	defer hwy.ForceWidth(16)()
func ForceWidth(bytes int) (restore func()) {
	if !ValidWidth(bytes) {
		panic(fmt.Sprintf("hwy: unsupported width %d bytes", bytes))
	}
	prev := currentWidth
	currentWidth = bytes
	return func() { currentWidth = prev }
}

// MaxLanes returns the number of lanes for type T with the current width.
//
// With the default 64-byte width:
//   - float32: 64/4 = 16 lanes
//   - float64: 64/8 = 8 lanes
//   - int64: 64/8 = 8 lanes
//
// Under HWY_NO_SIMD, 4-byte types still get 2 lanes.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
