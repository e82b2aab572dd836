package state

import (
	"sync"
	"testing"

	"github.com/drigmma/zabugorn/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStore_Session(t *testing.T) {
	store := NewStore()

	// No session initially
	assert.Nil(t, store.Session(123))

	sess := domain.NewSession(123)
	store.SetSession(123, sess)

	got := store.Session(123)
	assert.Equal(t, sess, got)

	// Distinct user is unaffected
	assert.Nil(t, store.Session(456))

	store.ClearSession(123)
	assert.Nil(t, store.Session(123))
}

func TestStore_Consent(t *testing.T) {
	store := NewStore()

	assert.False(t, store.Consent(123))

	store.SetConsent(123, true)
	assert.True(t, store.Consent(123))
	assert.False(t, store.Consent(456))

	store.SetConsent(123, false)
	assert.False(t, store.Consent(123))
}

func TestStore_SupportWaiting(t *testing.T) {
	store := NewStore()

	assert.False(t, store.TakeSupportWaiting(123))

	store.SetSupportWaiting(123)

	// First take reads and clears
	assert.True(t, store.TakeSupportWaiting(123))
	assert.False(t, store.TakeSupportWaiting(123))
}

func TestStore_UserLock(t *testing.T) {
	store := NewStore()

	// Same user gets the same lock, distinct users get distinct locks
	lock1 := store.UserLock(123)
	lock2 := store.UserLock(123)
	lock3 := store.UserLock(456)

	assert.Same(t, lock1, lock2)
	assert.NotSame(t, lock1, lock3)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()

			lock := store.UserLock(userID)
			lock.Lock()
			defer lock.Unlock()

			store.SetConsent(userID, true)
			store.SetSession(userID, domain.NewSession(userID))
			store.SetSupportWaiting(userID)
		}(int64(i))
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		userID := int64(i)
		assert.True(t, store.Consent(userID))
		assert.NotNil(t, store.Session(userID))
		assert.True(t, store.TakeSupportWaiting(userID))
	}
}
