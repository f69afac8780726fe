package ratelimit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowExhaustsBurst(t *testing.T) {
	krl := New(0.001, 2)

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))
}

func TestAllowKeysAreIndependent(t *testing.T) {
	krl := New(0.001, 1)

	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"))
	assert.True(t, krl.Allow("b"))
}

func TestGetLimiterConcurrent(t *testing.T) {
	krl := New(100, 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			krl.Allow("shared")
		}()
	}
	wg.Wait()

	assert.Len(t, krl.limiters, 1)
}
