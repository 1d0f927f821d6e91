package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type MemberService struct {
	memberRepo ports.MemberRepo
	logger     logger.Logger
}

func NewMemberService(memberRepo ports.MemberRepo, logger logger.Logger) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (s *MemberService) Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	tier := input.Tier
	if tier == "" {
		tier = domain.TierGuest
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown tier %q", domain.ErrValidation, tier)
	}

	member := &domain.Member{
		ID:              uuid.New().String(),
		Username:        username,
		Tier:            tier,
		SafetyCertified: input.SafetyCertified,
		TelegramChatID:  input.TelegramChatID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.logger.Info("member created",
		logger.String("member_id", member.ID),
		logger.String("username", member.Username),
		logger.String("tier", string(member.Tier)),
	)

	return member, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.memberRepo.List(ctx)
}
