package profiling

import (
	"sort"
	"strings"
	"time"
)

// Lightweight per-frame CPU profiler for tick-level insights.

var frameTotals = make(map[string]time.Duration)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		frameTotals[name] += time.Since(start)
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	for k := range frameTotals {
		delete(frameTotals, k)
	}
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats top N durations from the current frame totals.
// Example: "renderer.Render:4.2ms, glfw.SwapBuffers:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, list[i].name+":"+formatMs(ms))
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	// keep one decimal for readability
	whole := int64(ms)
	frac := int64((ms-float64(whole))*10.0 + 0.0001)
	if frac <= 0 {
		return itoa(whole) + "ms"
	}
	return itoa(whole) + "." + itoa(frac) + "ms"
}

func itoa(i int64) string {
	if i == 0 {
		return "0"
	}
	buf := make([]byte, 0, 20)
	for i > 0 {
		buf = append(buf, byte('0'+i%10))
		i /= 10
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}
