package lock_test

import (
	"sync"
	"testing"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	km := lock.NewKeyedMutex()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			km.Lock("user-a")
			defer km.Unlock("user-a")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := lock.NewKeyedMutex()

	km.Lock("user-a")
	defer km.Unlock("user-a")

	done := make(chan struct{})
	go func() {
		km.Lock("user-b")
		km.Unlock("user-b")
		close(done)
	}()

	// A distinct key must not block behind user-a.
	<-done
}

func TestKeyedMutex_UnlockUnheldKeyPanics(t *testing.T) {
	km := lock.NewKeyedMutex()

	require.Panics(t, func() {
		km.Unlock("never-locked")
	})
}
