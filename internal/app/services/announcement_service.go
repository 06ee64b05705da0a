package services

import (
	"context"
	"time"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/logger"
	"github.com/suhaktamgu/academy/internal/pkg/push"
)

// AnnouncementService manages notices and their push fan-out.
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
	pushTokenRepo    *repositories.PushTokenRepository
	pushClient       *push.ExpoClient
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository, pushTokenRepo *repositories.PushTokenRepository, pushClient *push.ExpoClient) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		pushTokenRepo:    pushTokenRepo,
		pushClient:       pushClient,
	}
}

// Create publishes a notice and notifies the target role's devices.
// Push delivery is fire and forget; a notice is published even when
// every push fails.
func (s *AnnouncementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		TargetRole:  req.TargetRole,
		PublishDate: time.Now(),
		ExpiryDate:  req.ExpiryDate,
		IsActive:    true,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	tokens, err := s.pushTokenRepo.ListActiveTokensForRole(ctx, req.TargetRole)
	if err != nil {
		logger.Error().Err(err).Int64("announcementId", announcement.ID).Msg("Failed to load push tokens for announcement")
		return announcement, nil
	}
	if len(tokens) > 0 {
		sent := s.pushClient.Send(ctx, tokens, announcement.Title, announcement.Content, map[string]any{
			"type": "announcement",
			"id":   announcement.ID,
		})
		logger.Info().Int64("announcementId", announcement.ID).Int("tokens", len(tokens)).Int("sent", sent).Msg("Announcement push fan-out")
	}

	return announcement, nil
}

// List retrieves every notice for staff administration.
func (s *AnnouncementService) List(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

// Update edits or retires a notice.
func (s *AnnouncementService) Update(ctx context.Context, id int64, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}
	if req.TargetRole != nil {
		announcement.TargetRole = *req.TargetRole
	}
	if req.ExpiryDate != nil {
		announcement.ExpiryDate = req.ExpiryDate
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes a notice.
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}
