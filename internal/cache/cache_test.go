package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorage_SetGet(t *testing.T) {
	s := NewStorage()

	assert.Nil(t, s.Get("missing"))

	s.Set("key", []byte("content"), time.Minute)
	assert.Equal(t, []byte("content"), s.Get("key"))

	s.Set("key", []byte("other"), time.Minute)
	assert.Equal(t, []byte("other"), s.Get("key"))
}

func TestStorage_Expiry(t *testing.T) {
	s := NewStorage()

	s.Set("key", []byte("content"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	assert.Nil(t, s.Get("key"))
}
