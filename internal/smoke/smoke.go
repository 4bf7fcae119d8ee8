// File: internal/smoke/smoke.go
// Author: momentics <momentics@gmail.com>
//
// End-to-end checks of the ring buffer contract, runnable outside `go test`
// so a deployed binary can verify the host's virtual memory support.

package smoke

import (
	"fmt"
	"time"

	"github.com/momentics/vring/api"
	"github.com/momentics/vring/ring"
)

// Env is what every check receives.
type Env struct {
	// Capacity is the requested capacity of every buffer a check builds.
	Capacity uint64
	// Options are passed to every NewRingBuffer call.
	Options []ring.Option
	// Metrics, when set, receives each buffer's counters after its check.
	Metrics api.Metrics
}

// Check is a named contract check.
type Check struct {
	Name string
	Run  func(env Env) error
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// Checks returns all checks in execution order.
func Checks() []Check {
	return []Check{
		{Name: "simple_write_read", Run: checkSimpleWriteRead},
		{Name: "wrap_around", Run: checkWrapAround},
		{Name: "overwrite", Run: checkOverwrite},
		{Name: "empty_read", Run: checkEmptyRead},
		{Name: "clear", Run: checkClear},
		{Name: "large_input_overwrite", Run: checkLargeInputOverwrite},
		{Name: "partial_reads", Run: checkPartialReads},
		{Name: "float_type", Run: checkFloatType},
	}
}

// Run executes checks in order, calling report after each one.
func Run(env Env, checks []Check, report func(Result)) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		start := time.Now()
		err := runGuarded(c, env)
		res := Result{Name: c.Name, Err: err, Duration: time.Since(start)}
		if report != nil {
			report(res)
		}
		results = append(results, res)
	}
	return results
}

// runGuarded turns a contract panic into a failed check.
func runGuarded(c Check, env Env) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return c.Run(env)
}
