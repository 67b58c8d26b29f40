// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// CPUFeatures holds detected CPU capabilities relevant to limb arithmetic.
type CPUFeatures struct {
	IsAMD64 bool
	IsARM64 bool

	// AMD64 features
	HasADX  bool // ADCX/ADOX dual carry-chain support
	HasBMI2 bool // MULX and friends
	HasAVX2 bool

	// ARM64 features
	HasASIMD bool
}

// fastPath reports whether the math/bits-based "optimized" unsigned
// primitives are likely to beat the plain uint64-accumulator generic
// ones on this CPU. Both paths are pure Go; this only picks which one
// the dispatcher wires up.
func (f CPUFeatures) fastPath() bool {
	switch {
	case f.IsAMD64:
		return f.HasADX || f.HasBMI2 || f.HasAVX2
	case f.IsARM64:
		return f.HasASIMD
	default:
		return false
	}
}

var (
	cpuFeatures     CPUFeatures
	cpuFeaturesOnce sync.Once
)

// detectCPUFeatures performs feature detection via golang.org/x/sys/cpu.
func detectCPUFeatures() CPUFeatures {
	var f CPUFeatures

	arch := runtime.GOARCH
	f.IsAMD64 = arch == "amd64"
	f.IsARM64 = arch == "arm64"

	if f.IsAMD64 {
		f.HasADX = cpu.X86.HasADX
		f.HasBMI2 = cpu.X86.HasBMI2
		f.HasAVX2 = cpu.X86.HasAVX2
	}
	if f.IsARM64 {
		f.HasASIMD = cpu.ARM64.HasASIMD
	}

	return f
}

// GetCPUFeatures returns the detected CPU features, cached after first use.
func GetCPUFeatures() CPUFeatures {
	cpuFeaturesOnce.Do(func() {
		cpuFeatures = detectCPUFeatures()
	})
	return cpuFeatures
}
