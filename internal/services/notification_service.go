package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/logger"
	"saheminvest/internal/models"
	"saheminvest/internal/pagination"
)

// Notification kinds.
const (
	NotificationDistributionPaid     = "DISTRIBUTION_PAID"
	NotificationDistributionApproved = "DISTRIBUTION_APPROVED"
	NotificationDistributionRejected = "DISTRIBUTION_REJECTED"
)

// NotificationEvent is a message for one user.
type NotificationEvent struct {
	UserID  string `json:"user_id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Notifier delivers notification events. Delivery is best effort: callers log
// failures and carry on.
type Notifier interface {
	Notify(event NotificationEvent) error
}

// BatchNotifier delivers a group of events in one round trip.
type BatchNotifier interface {
	NotifyBatch(events []NotificationEvent) error
}

// notifyEach delivers events through n, in one batch when n supports it.
func notifyEach(n Notifier, events []NotificationEvent) error {
	if b, ok := n.(BatchNotifier); ok {
		return b.NotifyBatch(events)
	}
	var errs []error
	for _, event := range events {
		if err := n.Notify(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// dispatch sends every event, logging the ones that fail. Batch notifiers
// receive all events at once, so a slow backend costs one timeout per
// dispatch rather than one per event.
func dispatch(n Notifier, events []NotificationEvent) {
	if n == nil || len(events) == 0 {
		return
	}
	if b, ok := n.(BatchNotifier); ok {
		if err := b.NotifyBatch(events); err != nil {
			logger.Get().Warnw("failed to dispatch notifications",
				"error", err,
				"events", len(events),
			)
		}
		return
	}
	for _, event := range events {
		if err := n.Notify(event); err != nil {
			logger.Get().Warnw("failed to dispatch notification",
				"error", err,
				"user_id", event.UserID,
				"kind", event.Kind,
			)
		}
	}
}

// dbNotifier stores events as in-app notifications.
type dbNotifier struct {
	db *gorm.DB
}

// NewDBNotifier creates a Notifier backed by the notifications table.
func NewDBNotifier(db *gorm.DB) Notifier {
	return &dbNotifier{db: db}
}

func (n *dbNotifier) Notify(event NotificationEvent) error {
	return n.NotifyBatch([]NotificationEvent{event})
}

// NotifyBatch stores all events with a single insert.
func (n *dbNotifier) NotifyBatch(events []NotificationEvent) error {
	rows := make([]models.Notification, 0, len(events))
	for _, event := range events {
		rows = append(rows, models.Notification{
			UserID:  event.UserID,
			Kind:    event.Kind,
			Title:   event.Title,
			Message: event.Message,
		})
	}
	return n.db.Create(&rows).Error
}

// RedisNotifier pushes events as JSON onto a redis list consumed by the
// email and push delivery workers.
type RedisNotifier struct {
	client  *redis.Client
	queue   string
	timeout time.Duration
}

// NewRedisNotifier creates a RedisNotifier pushing onto queue.
func NewRedisNotifier(client *redis.Client, queue string) *RedisNotifier {
	return &RedisNotifier{client: client, queue: queue, timeout: 2 * time.Second}
}

func (n *RedisNotifier) Notify(event NotificationEvent) error {
	return n.NotifyBatch([]NotificationEvent{event})
}

// NotifyBatch appends all events to the queue with a single RPUSH, bounded by
// one timeout.
func (n *RedisNotifier) NotifyBatch(events []NotificationEvent) error {
	payloads := make([]interface{}, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		payloads = append(payloads, payload)
	}
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	return n.client.RPush(ctx, n.queue, payloads...).Err()
}

// multiNotifier fans an event out to several notifiers.
type multiNotifier []Notifier

// NewMultiNotifier combines notifiers; nil entries are skipped. Every
// notifier is tried even when an earlier one fails.
func NewMultiNotifier(notifiers ...Notifier) Notifier {
	var m multiNotifier
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multiNotifier) Notify(event NotificationEvent) error {
	return m.NotifyBatch([]NotificationEvent{event})
}

// NotifyBatch hands the whole batch to each notifier in turn.
func (m multiNotifier) NotifyBatch(events []NotificationEvent) error {
	var errs []error
	for _, n := range m {
		if err := notifyEach(n, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// notificationService reads and acknowledges in-app notifications.
type notificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(db *gorm.DB) NotificationServicer {
	return &notificationService{db: db}
}

// ListForUser returns the user's notifications, newest first.
func (s *notificationService) ListForUser(userID string, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error) {
	page.Defaults()

	base := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		base = base.Where("read_at IS NULL")
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var notifications []models.Notification
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(notifications, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *notificationService) MarkRead(userID, notificationID string) error {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read_at", time.Now())
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Notification not found")
	}
	return nil
}
