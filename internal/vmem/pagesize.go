// File: internal/vmem/pagesize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vmem

import (
	"fmt"
	"sync"

	"github.com/momentics/vring/api"
)

var (
	pageOnce sync.Once
	pageSize int
	pageErr  error
)

// PageSize returns the host page size. The OS is queried once per process;
// the result, or the failure, is cached.
func PageSize() (int, error) {
	pageOnce.Do(func() {
		ps := queryPageSize()
		if ps <= 0 {
			pageErr = api.NewResourceError(StepPageSize, fmt.Errorf("host reported page size %d", ps))
			return
		}
		pageSize = ps
	})
	return pageSize, pageErr
}
