package brushmask

import (
	"fmt"
	"sync"

	"golang.org/x/sys/cpu"
)

// Implementation identifies the instruction set an applicator was selected
// for.
//
// There are two code paths. ImplGeneric runs the scalar applicator; every
// other value runs the same 8-lane wide.F32x8 row processors, which the
// compiler lowers for the target GOARCH. The vector values name the host
// feature that was detected, so logs and benchmarks can tell hosts apart,
// but they do not select different kernels.
type Implementation uint8

const (
	// ImplGeneric is the scalar applicator.
	ImplGeneric Implementation = iota
	// The following values all run the shared row processors.
	ImplSSE2
	ImplSSE4
	ImplAVX
	ImplAVX2
	ImplAVX512
	ImplNEON
)

var implNames = [...]string{
	ImplGeneric: "generic",
	ImplSSE2:    "sse2",
	ImplSSE4:    "sse4.1",
	ImplAVX:     "avx",
	ImplAVX2:    "avx2",
	ImplAVX512:  "avx512",
	ImplNEON:    "neon",
}

// String returns the lower-case name used in logs and test names.
func (i Implementation) String() string {
	if int(i) < len(implNames) {
		return implNames[i]
	}
	return fmt.Sprintf("Implementation(%d)", i)
}

// Vectorized reports whether the implementation runs row processors.
func (i Implementation) Vectorized() bool {
	return i != ImplGeneric && int(i) < len(implNames)
}

// cpuFeatures is the subset of host capabilities the selection depends on.
type cpuFeatures struct {
	sse2, sse41, avx, avx2, avx512f bool
	asimd                           bool
}

func hostFeatures() cpuFeatures {
	return cpuFeatures{
		sse2:    cpu.X86.HasSSE2,
		sse41:   cpu.X86.HasSSE41,
		avx:     cpu.X86.HasAVX,
		avx2:    cpu.X86.HasAVX2,
		avx512f: cpu.X86.HasAVX512F,
		asimd:   cpu.ARM64.HasASIMD,
	}
}

// selectImplementation picks the widest supported implementation.
func selectImplementation(f cpuFeatures) Implementation {
	switch {
	case f.avx512f:
		return ImplAVX512
	case f.avx2:
		return ImplAVX2
	case f.avx:
		return ImplAVX
	case f.sse41:
		return ImplSSE4
	case f.sse2:
		return ImplSSE2
	case f.asimd:
		return ImplNEON
	default:
		return ImplGeneric
	}
}

var detectedImplementation = sync.OnceValue(func() Implementation {
	impl := selectImplementation(hostFeatures())
	Logger().Info("brushmask: row processor implementation", "impl", impl)
	return impl
})

// DetectImplementation returns the best implementation for the host.
// The host is probed once; later calls return the cached answer.
func DetectImplementation() Implementation {
	return detectedImplementation()
}
