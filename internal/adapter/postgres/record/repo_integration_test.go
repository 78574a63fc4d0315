//go:build integration

package record_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

func newRepo(t *testing.T) *record.Repo {
	t.Helper()
	return record.New(testhelper.SetupTestDB(t))
}

func uniqueKey(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

func TestRepo_RoundTrip(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()
	key := uniqueKey("meals")

	_, err := repo.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Put(ctx, key, []byte(`[{"name":"Salad","calories":300}]`)))
	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Salad","calories":300}]`, string(got))

	require.NoError(t, repo.Put(ctx, key, []byte(`[]`)))
	got, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}

func TestRepo_Put_InvalidJSON(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	err := repo.Put(context.Background(), uniqueKey("bad"), []byte(`{not json`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_Put_EmptyKey(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	err := repo.Put(context.Background(), "", []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_Ping(t *testing.T) {
	t.Parallel()
	require.NoError(t, newRepo(t).Ping(context.Background()))
}
