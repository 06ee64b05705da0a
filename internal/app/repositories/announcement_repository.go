package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// AnnouncementRepository handles announcements.
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementSelect = `
	SELECT id, title, content, target_role, publish_date, expiry_date, is_active, created_at
	FROM announcements`

func scanAnnouncement(row interface{ Scan(dest ...any) error }) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.TargetRole, &a.PublishDate,
		&a.ExpiryDate, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error scanning announcement: %w", err)
	}
	return a, nil
}

func (r *AnnouncementRepository) queryAnnouncements(ctx context.Context, sql string, args ...any) ([]*models.Announcement, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	announcements := make([]*models.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// Create inserts an announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO announcements (title, content, target_role, publish_date, expiry_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		a.Title, a.Content, a.TargetRole, a.PublishDate, a.ExpiryDate, a.IsActive).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetByID retrieves one announcement.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	row := r.db.QueryRow(ctx, announcementSelect+` WHERE id = $1`, id)
	return scanAnnouncement(row)
}

// List retrieves all announcements, newest first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]*models.Announcement, error) {
	return r.queryAnnouncements(ctx, announcementSelect+` ORDER BY publish_date DESC`)
}

// ListRecent retrieves the latest notices for the dashboard.
func (r *AnnouncementRepository) ListRecent(ctx context.Context, limit int) ([]*models.Announcement, error) {
	return r.queryAnnouncements(ctx, announcementSelect+`
		ORDER BY publish_date DESC
		LIMIT $1`, limit)
}

// ListActiveForRole retrieves live announcements addressed to a role or
// to everyone. Expired notices are filtered out by date.
func (r *AnnouncementRepository) ListActiveForRole(ctx context.Context, role models.RoleType, today string) ([]*models.Announcement, error) {
	return r.queryAnnouncements(ctx, announcementSelect+`
		WHERE is_active = true
		  AND (target_role = $1 OR target_role = $2)
		  AND (expiry_date IS NULL OR expiry_date >= $3)
		ORDER BY publish_date DESC`, role, models.TargetAll, today)
}

// Update writes the mutable announcement fields.
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE announcements
		SET title = $1, content = $2, target_role = $3, expiry_date = $4, is_active = $5
		WHERE id = $6`,
		a.Title, a.Content, a.TargetRole, a.ExpiryDate, a.IsActive, a.ID)
	if err != nil {
		return fmt.Errorf("error updating announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// Delete removes an announcement.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
