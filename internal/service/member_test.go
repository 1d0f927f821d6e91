package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberService_Create_Success(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	member, err := svc.Create(context.Background(), domain.CreateMemberInput{
		Username:        "  alice ",
		Tier:            domain.TierGold,
		SafetyCertified: true,
		TelegramChatID:  &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "alice", member.Username)
	assert.Equal(t, domain.TierGold, member.Tier)
	assert.True(t, member.SafetyCertified)
	assert.Equal(t, &chatID, member.TelegramChatID)
}

func TestMemberService_Create_DefaultsToGuest(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	member, err := svc.Create(context.Background(), domain.CreateMemberInput{Username: "bob"})

	require.NoError(t, err)
	assert.Equal(t, domain.TierGuest, member.Tier)
}

func TestMemberService_Create_Validation(t *testing.T) {
	svc := NewMemberService(nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{Username: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateMemberInput{Username: "carol", Tier: "PLATINUM"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{Username: "alice"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestMemberService_List(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo, newTestLogger(t))

	repo.EXPECT().List(mock.Anything).Return([]*domain.Member{{ID: "m1"}, {ID: "m2"}}, nil)

	members, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMemberService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo, newTestLogger(t))

	repoErr := errors.New("db error")
	repo.EXPECT().List(mock.Anything).Return(nil, repoErr)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, repoErr)
}
