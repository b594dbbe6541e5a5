// Package client is a thin gRPC client for the notification service. Other
// services use it to record user-facing events without taking a hard
// dependency on the notification service being up.
package client

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	notificationv1 "shortlink-platform/backend/api/generated/notification/v1"
	"shortlink-platform/backend/internal/server/interceptors"
)

const notifyTimeout = 3 * time.Second

// Client implements the Notifier interfaces used by other services. Every
// call is best-effort: failures are logged, never returned.
type Client struct {
	conn   *grpc.ClientConn
	svc    notificationv1.NotificationServiceClient
	logger zerolog.Logger
}

// Dial connects to the notification service at addr. The connection carries
// the bearer-token propagation interceptor, so calls made with a token on the
// context authenticate as the originating user.
func Dial(addr string, logger zerolog.Logger, extra ...grpc.DialOption) (*Client, error) {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(interceptors.PropagateUnary()),
	}, extra...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:   conn,
		svc:    notificationv1.NewNotificationServiceClient(conn),
		logger: logger,
	}, nil
}

// Notify records an event for the user. Errors are swallowed after logging;
// a notification outage must never fail a login or a visit.
func (c *Client) Notify(ctx context.Context, userID int64, kind, message string) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	_, err := c.svc.CreateNotification(ctx, &notificationv1.CreateNotificationRequest{
		UserId:  userID,
		Kind:    kind,
		Message: message,
	})
	if err != nil {
		c.logger.Warn().Err(err).Int64("user_id", userID).Str("kind", kind).
			Msg("notification delivery failed")
	}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
