// Package handler exposes the notification service over gRPC.
package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	notificationv1 "shortlink-platform/backend/api/generated/notification/v1"
	"shortlink-platform/backend/internal/notification/domain"
	"shortlink-platform/backend/internal/notification/repository"
	"shortlink-platform/backend/internal/platform/rbac"
)

// Server implements NotificationService (proto server).
type Server struct {
	notificationv1.UnimplementedNotificationServiceServer
	store repository.Repository
}

// NewServer returns a new notification gRPC server.
func NewServer(store repository.Repository) *Server {
	return &Server{store: store}
}

// CreateNotification appends an entry to a user's event log. Callers may only
// write entries for themselves unless they are admins; this lets services
// acting on behalf of a user record events without a separate machine identity.
func (s *Server) CreateNotification(ctx context.Context, req *notificationv1.CreateNotificationRequest) (*notificationv1.Notification, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetUserId() != p.UserID && !p.IsAdmin() {
		return nil, status.Error(codes.PermissionDenied, "cannot write notifications for another user")
	}
	if req.GetKind() == "" || req.GetMessage() == "" {
		return nil, status.Error(codes.InvalidArgument, "kind and message are required")
	}
	n := &domain.Notification{
		UserID:    req.GetUserId(),
		Kind:      req.GetKind(),
		Message:   req.GetMessage(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, n); err != nil {
		return nil, status.Error(codes.Internal, "notification write failed")
	}
	return toProto(n), nil
}

// ListNotifications returns the caller's notifications, newest first.
func (s *Server) ListNotifications(ctx context.Context, req *notificationv1.ListNotificationsRequest) (*notificationv1.ListNotificationsResponse, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	limit := req.GetLimit()
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := req.GetOffset()
	if offset < 0 {
		offset = 0
	}
	items, err := s.store.ListByUser(ctx, p.UserID, limit, offset)
	if err != nil {
		return nil, status.Error(codes.Internal, "notification list failed")
	}
	out := make([]*notificationv1.Notification, len(items))
	for i, n := range items {
		out[i] = toProto(n)
	}
	return &notificationv1.ListNotificationsResponse{Notifications: out}, nil
}

func toProto(n *domain.Notification) *notificationv1.Notification {
	return &notificationv1.Notification{
		Id:        n.ID,
		UserId:    n.UserID,
		Kind:      n.Kind,
		Message:   n.Message,
		CreatedAt: timestamppb.New(n.CreatedAt),
	}
}
