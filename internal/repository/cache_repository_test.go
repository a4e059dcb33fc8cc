package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	assert.False(t, repo.Enabled())

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "k", &dest), appErrors.ErrCacheMiss)
	require.NoError(t, repo.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(ctx, "k*"))

	count, ttl, err := repo.Increment(ctx, "rl:login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, ttl)
	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
}
