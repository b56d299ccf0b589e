package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledCacheIsSafe(t *testing.T) {
	ctx := context.Background()

	for _, c := range []*Cache{nil, New(nil)} {
		var dest string
		assert.False(t, c.GetJSON(ctx, "books:all", &dest))
		c.SetJSON(ctx, "books:all", "value")
		c.Invalidate(ctx, "books:all", "books:1")
	}
}
