package redisstore

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var _ fiber.Storage = (*Storage)(nil)

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("://nope", "sess:")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestStorage_EmptyKeysAreNoops(t *testing.T) {
	// The client is never dialed for empty keys.
	s := &Storage{client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), prefix: "sess:"}
	defer s.Close()

	val, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, s.Set("", []byte("x"), 0))
	assert.NoError(t, s.Set("k", nil, 0))
	assert.NoError(t, s.Delete(""))
	assert.Equal(t, "sess:abc", s.key("abc"))
}
