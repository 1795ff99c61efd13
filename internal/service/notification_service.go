package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/events"
	"github.com/uta-gremial/reclamos-service/internal/repository"
)

const (
	notificationListCap = 100
	unreadCacheTTL      = time.Minute
)

// NotificationService persists one-way notices to users and answers unread
// counters, caching them briefly in redis.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	cache         *redis.Client
	logger        *zap.Logger
}

// NewNotificationService creates the service. The cache client may be nil.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, cache *redis.Client, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		cache:         cache,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to the comment events that produce
// notifications: an admin commenting on a complaint with a recorded creator
// notifies that creator.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handleCommentAdded)
}

func (n *NotificationService) handleCommentAdded(ctx context.Context, event events.Event) error {
	if event.ActorRole != domain.RoleAdmin {
		return nil
	}
	payload, ok := event.Payload.(events.CommentAddedPayload)
	if !ok || payload.CreadorID == nil {
		return nil
	}
	message := fmt.Sprintf("Nueva respuesta en tu reclamo %s", event.NumeroReclamo)
	if err := n.Notify(ctx, *payload.CreadorID, event.ReclamoID, event.NumeroReclamo, message); err != nil {
		n.logger.Error("notify failed",
			zap.String("reclamo_id", event.ReclamoID),
			zap.Error(err))
		return err
	}
	return nil
}

// Notify persists a new unread notification.
func (n *NotificationService) Notify(ctx context.Context, userID, reclamoID, numeroReclamo, message string) error {
	notification := &domain.Notification{
		ID:            uuid.NewString(),
		UserID:        userID,
		ReclamoID:     reclamoID,
		NumeroReclamo: numeroReclamo,
		Message:       message,
		Read:          false,
		CreatedAt:     time.Now().UTC(),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		return err
	}
	n.invalidateUnread(ctx, userID)
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (n *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	list, err := n.notifications.ListForUser(ctx, userID, notificationListCap)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Notification{}
	}
	return list, nil
}

// MarkRead flips the read flag when the notification belongs to the user.
func (n *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := n.notifications.MarkRead(ctx, id, userID); err != nil {
		return err
	}
	n.invalidateUnread(ctx, userID)
	return nil
}

// UnreadCount answers from the redis counter cache when possible, falling
// back to the database.
func (n *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	key := unreadCacheKey(userID)
	if n.cache != nil {
		if cached, err := n.cache.Get(ctx, key).Result(); err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		}
	}

	count, err := n.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	if n.cache != nil {
		if err := n.cache.Set(ctx, key, count, unreadCacheTTL).Err(); err != nil {
			n.logger.Warn("unread cache set failed", zap.Error(err))
		}
	}
	return count, nil
}

func (n *NotificationService) invalidateUnread(ctx context.Context, userID string) {
	if n.cache == nil {
		return
	}
	if err := n.cache.Del(ctx, unreadCacheKey(userID)).Err(); err != nil {
		n.logger.Warn("unread cache invalidation failed", zap.Error(err))
	}
}

func unreadCacheKey(userID string) string {
	return "notifications:unread:" + userID
}
