package lowindex

import "runtime"

// HardwareConcurrency reports the number of hardware threads to use when
// num_threads == 0 ("all hardware threads", §6). The original Python
// bindings halve this on Intel CPUs as a hyperthreading heuristic; that
// heuristic is platform-fragile and not requested by the spec, so this
// simply returns runtime.NumCPU().
func HardwareConcurrency() int {
	return runtime.NumCPU()
}
