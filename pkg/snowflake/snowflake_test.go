package snowflake

import (
	"sync"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenID(t *testing.T) {
	assert.Positive(t, GenID())
}

func TestGenIDIncreasing(t *testing.T) {
	prev := GenID()
	for i := 0; i < 1000; i++ {
		curr := GenID()
		require.Greater(t, curr, prev)
		prev = curr
	}
}

func TestGenIDConcurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 2000
	)

	var (
		wg  conc.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, goroutines*perRoutine)
	)
	for g := 0; g < goroutines; g++ {
		wg.Go(func() {
			local := make([]int64, 0, perRoutine)
			for i := 0; i < perRoutine; i++ {
				local = append(local, GenID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				ids[id] = struct{}{}
			}
		})
	}
	wg.Wait()

	assert.Len(t, ids, goroutines*perRoutine)
}
