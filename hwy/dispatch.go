package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set the running CPU was detected with.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector unit was detected or HWY_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 instructions (256-bit registers).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit registers).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit registers).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// scalarWidth is the block width used when no vector unit is available.
// Kernels still unroll by this many bytes so the scalar path is not a special case.
const scalarWidth = 16

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes for the current level.
// For example: 16 for scalar/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level,
// for example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// Any non-empty value that does not parse as false counts as set.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setLevel(level DispatchLevel, width int) {
	currentLevel = level
	currentWidth = width
}

func setScalarMode() {
	setLevel(DispatchScalar, scalarWidth)
}

// MaxLanes returns how many elements of type T fit in one register at the
// current width. It is always at least 1.
//
// With AVX2 (32 bytes):
//   - int64: 4 lanes
//   - int32: 8 lanes
//   - int8: 32 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	lanes := currentWidth / elementSize
	if lanes < 1 {
		return 1
	}
	return lanes
}
