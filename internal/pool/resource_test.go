package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResource_ConstructsOnDemand(t *testing.T) {
	calls := 0
	r := NewResource(func() int {
		calls++
		return calls
	})

	v, release := r.Acquire()
	require.Equal(t, 1, v)
	release()
}

func TestResource_ReusesReleasedValue(t *testing.T) {
	r := NewResource(func() *int { v := 0; return &v })

	p1, release1 := r.Acquire()
	release1()

	p2, release2 := r.Acquire()
	defer release2()

	require.Same(t, p1, p2, "should reuse the released value")
}

func TestResourceConcurrency(t *testing.T) {
	r := NewResource(func() *int { v := 0; return &v })

	const goroutines = 100
	done := make(chan bool, goroutines)

	for range goroutines {
		go func() {
			v, release := r.Acquire()
			defer release()

			*v++

			done <- true
		}()
	}

	for range goroutines {
		<-done
	}
}
