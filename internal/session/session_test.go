package session

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/stretchr/testify/assert"
)

func TestStore_Lifecycle(t *testing.T) {
	s := New()

	_, ok := s.User()
	assert.False(t, ok)
	assert.Empty(t, s.Token())

	user := models.LoggedInUser{UserID: 1, Login: "demo", Name: "Demo", Token: "tok"}
	s.Set(user)

	got, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, "tok", s.Token())

	s.Clear()
	_, ok = s.User()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(models.LoggedInUser{UserID: int64(i + 1), Token: "t"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Token()
			_, _ = s.User()
		}()
	}
	wg.Wait()

	assert.Equal(t, "t", s.Token())
}
