package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bizlens/bizlens/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, *SQLiteMessageRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewSQLiteSessionRepo(db), NewSQLiteMessageRepo(db)
}

func TestSessionRepo_UpsertAndGetByID(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(testutil.WithSessionTitle("revenue questions"))
	require.NoError(t, repo.Upsert(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, "revenue questions", fetched.Title)
	assert.True(t, fetched.StartedAt.Equal(sess.StartedAt))
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_UpsertKeepsMessages(t *testing.T) {
	repo, msgRepo := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(testutil.WithSessionTitle("show revenue"))
	require.NoError(t, repo.Upsert(ctx, sess))
	require.NoError(t, msgRepo.Create(ctx, testutil.NewTestMessage(sess.ID, "show revenue")))

	// Second upsert refreshes the session row; messages must survive and the
	// first title must stick.
	sess.Title = "add profit"
	sess.UpdatedAt = sess.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Upsert(ctx, sess))

	count, err := msgRepo.CountBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "show revenue", fetched.Title)
	assert.True(t, fetched.StartedAt.Equal(sess.StartedAt), "started_at should not change on upsert")
	assert.True(t, fetched.UpdatedAt.Equal(sess.UpdatedAt), "updated_at should advance on upsert")
}

func TestSessionRepo_UpsertFillsEmptyTitle(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(testutil.WithSessionTitle(""))
	require.NoError(t, repo.Upsert(ctx, sess))

	sess.Title = "show expenses"
	require.NoError(t, repo.Upsert(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "show expenses", fetched.Title)
}

func TestSessionRepo_List_NewestFirst(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	old := testutil.NewTestSession(testutil.WithSessionTitle("old"),
		testutil.WithSessionTimes(base, base))
	recent := testutil.NewTestSession(testutil.WithSessionTitle("recent"),
		testutil.WithSessionTimes(base.Add(time.Hour), base.Add(2*time.Hour)))
	require.NoError(t, repo.Upsert(ctx, old))
	require.NoError(t, repo.Upsert(ctx, recent))

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "recent", list[0].Title)
	assert.Equal(t, "old", list[1].Title)
}

func TestSessionRepo_List_Limit(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestSession()))
	}

	list, err := repo.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestSessionRepo_Delete_CascadesMessages(t *testing.T) {
	repo, msgRepo := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession()
	require.NoError(t, repo.Upsert(ctx, sess))
	require.NoError(t, msgRepo.Create(ctx, testutil.NewTestMessage(sess.ID, "hello")))

	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := msgRepo.CountBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
