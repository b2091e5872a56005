package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()

	s := st.Create()
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	s.Set("user", "gugu")
	v, ok := got.Get("user")
	assert.True(t, ok)
	assert.Equal(t, "gugu", v)

	s.Remove("user")
	_, ok = s.Get("user")
	assert.False(t, ok)

	s.Invalidate()
	_, ok = st.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, uint64(1), st.Created())
}

func TestGetOrCreate(t *testing.T) {
	st := NewStore()

	s, created := st.GetOrCreate("")
	assert.True(t, created)

	again, created := st.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := st.GetOrCreate("unknown-id")
	assert.True(t, created)
	assert.NotEqual(t, "unknown-id", other.ID)
	assert.Equal(t, 2, st.Len())
}

func TestConcurrentSessions(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := st.Create()
			s.Set("n", 1)
			_, _ = s.Get("n")
			s.Invalidate()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, uint64(20), st.Created())
}
