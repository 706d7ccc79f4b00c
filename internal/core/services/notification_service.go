package services

import (
	"context"
	"fmt"
	"time"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/pkg/pagination"
)

// Notification list filters
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterRead   = "read"
)

// NotificationService handles in-app notifications
type NotificationService struct {
	notificationRepo repositories.NotificationRepository

	now func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// NotificationPage is a filtered, windowed notification listing
type NotificationPage struct {
	Notifications []*domain.Notification
	Meta          *pagination.Meta
	UnreadCount   int
}

// List returns notifications filtered by read state, then paginated.
// Filtering happens before windowing so the metadata reflects the
// filtered set.
func (s *NotificationService) List(ctx context.Context, filter string, params *pagination.Params) (*NotificationPage, error) {
	if filter == "" {
		filter = FilterAll
	}
	if filter != FilterAll && filter != FilterUnread && filter != FilterRead {
		return nil, fmt.Errorf("%w: filter must be all, unread, or read", domain.ErrValidation)
	}

	all, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	unread := 0
	filtered := make([]*domain.Notification, 0, len(all))
	for _, n := range all {
		if !n.IsRead {
			unread++
		}
		switch filter {
		case FilterUnread:
			if n.IsRead {
				continue
			}
		case FilterRead:
			if !n.IsRead {
				continue
			}
		}
		filtered = append(filtered, n)
	}

	page, meta := pagination.Paginate(filtered, params)

	return &NotificationPage{
		Notifications: page,
		Meta:          meta,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if _, err := s.notificationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, id, s.now().UTC().Format(time.RFC3339))
}

// MarkAllRead marks every notification as read
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllRead(ctx, s.now().UTC().Format(time.RFC3339))
}

// Delete removes a notification
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notificationRepo.Delete(ctx, id)
}

// UnreadCount returns the number of unread notifications
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	return s.notificationRepo.CountUnread(ctx)
}
