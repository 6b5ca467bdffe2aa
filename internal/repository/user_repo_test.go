package repository

import (
	"context"
	"testing"

	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &domain.User{Email: "a@example.com", Password: "hash", Nickname: "alice"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Nickname)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := repo.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "dup@example.com", Password: "h", Nickname: "one"}))
	err := repo.Create(ctx, &domain.User{Email: "dup@example.com", Password: "h", Nickname: "two"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_FindNicksByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	a := &domain.User{Email: "a@example.com", Password: "h", Nickname: "alice"}
	b := &domain.User{Email: "b@example.com", Password: "h", Nickname: "bob"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	nicks, err := repo.FindNicksByIDs(ctx, []uint64{a.ID, b.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{a.ID: "alice", b.ID: "bob"}, nicks)

	empty, err := repo.FindNicksByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
