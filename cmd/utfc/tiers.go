package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/coregx/utfc"
	"github.com/coregx/utfc/simd"
)

// printTiers lists the compiled scanner tiers, whether this CPU can run
// them, and which of them the codec was configured to use.
func printTiers(w io.Writer, codec *utfc.Codec) error {
	active := make(map[string]bool)
	for _, name := range codec.Tiers() {
		active[name] = true
	}

	if _, err := fmt.Fprintf(w, "%s/%s big-endian=%t features=%s\n",
		runtime.GOOS, runtime.GOARCH, cpu.IsBigEndian, cpuFeatures()); err != nil {
		return err
	}
	for _, t := range simd.CompiledTiers() {
		_, err := fmt.Fprintf(w, "%-8s width=%-3d available=%-5t active=%t\n",
			t.Name, t.Width, t.Available(), active[t.Name])
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "scalar   width=1   available=true  active=true")
	return err
}

func cpuFeatures() string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	add("sse2", cpu.X86.HasSSE2)
	add("avx", cpu.X86.HasAVX)
	add("avx2", cpu.X86.HasAVX2)
	add("avx512bw", cpu.X86.HasAVX512BW)
	add("asimd", cpu.ARM64.HasASIMD)
	if len(features) == 0 {
		return "none"
	}
	return strings.Join(features, ",")
}
