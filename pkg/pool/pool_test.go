package pool

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParallelize(t *testing.T) {
	square := func(i int) interface{} { return i * i }

	var nilPool *Pool
	assert.Equal(t, []interface{}{0, 1, 4, 9}, nilPool.Parallelize(4, square))

	p := NewPool(3)
	defer p.TearDown()
	results := p.Parallelize(100, square)
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
	assert.Equal(t, 3, p.Workers())
}

func TestMap(t *testing.T) {
	p := NewPool(0)
	defer p.TearDown()
	out := Map(p, 10, func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, out)
	assert.Equal(t, 1, (*Pool)(nil).Workers())
}

func TestTearDown_ReleasesWorkers(t *testing.T) {
	before := runtime.NumGoroutine()
	for round := 0; round < 200; round++ {
		p := NewPool(8)
		p.Parallelize(8, func(i int) interface{} { return i })
		p.TearDown()
	}
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+2
	}, 5*time.Second, 10*time.Millisecond, "workers still running after TearDown")
}
