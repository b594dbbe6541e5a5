package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "shortlink-platform/backend/api/generated/notification/v1"
	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/notification/domain"
)

type fakeStore struct {
	created []*domain.Notification
	nextID  int64
}

func (f *fakeStore) Create(ctx context.Context, n *domain.Notification) error {
	f.nextID++
	n.ID = f.nextID
	f.created = append(f.created, n)
	return nil
}

func (f *fakeStore) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func asPrincipal(userID int64, role auth.Role) context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{UserID: userID, Role: role})
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok || st.Code() != want {
		t.Fatalf("err = %v, want code %v", err, want)
	}
}

func TestCreateNotification_OwnEventsOnly(t *testing.T) {
	store := &fakeStore{}
	srv := NewServer(store)

	// A user writes their own event.
	got, err := srv.CreateNotification(asPrincipal(7, auth.RoleUser), &notificationv1.CreateNotificationRequest{
		UserId: 7, Kind: "login", Message: "signed in",
	})
	if err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}
	if got.GetUserId() != 7 || got.GetId() == 0 {
		t.Errorf("notification = %+v", got)
	}

	// Another user's event is denied for non-admins.
	_, err = srv.CreateNotification(asPrincipal(7, auth.RoleUser), &notificationv1.CreateNotificationRequest{
		UserId: 8, Kind: "login", Message: "signed in",
	})
	wantCode(t, err, codes.PermissionDenied)

	// Admins may write for anyone.
	if _, err := srv.CreateNotification(asPrincipal(1, auth.RoleAdmin), &notificationv1.CreateNotificationRequest{
		UserId: 8, Kind: "status", Message: "account disabled",
	}); err != nil {
		t.Errorf("admin CreateNotification: %v", err)
	}
}

func TestCreateNotification_Anonymous(t *testing.T) {
	srv := NewServer(&fakeStore{})
	_, err := srv.CreateNotification(context.Background(), &notificationv1.CreateNotificationRequest{
		UserId: 7, Kind: "login", Message: "signed in",
	})
	wantCode(t, err, codes.Unauthenticated)
}

func TestCreateNotification_Validation(t *testing.T) {
	srv := NewServer(&fakeStore{})
	_, err := srv.CreateNotification(asPrincipal(7, auth.RoleUser), &notificationv1.CreateNotificationRequest{
		UserId: 7, Kind: "", Message: "",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestListNotifications_ScopedToCaller(t *testing.T) {
	store := &fakeStore{}
	srv := NewServer(store)
	_, _ = srv.CreateNotification(asPrincipal(7, auth.RoleUser), &notificationv1.CreateNotificationRequest{
		UserId: 7, Kind: "login", Message: "signed in",
	})
	_, _ = srv.CreateNotification(asPrincipal(8, auth.RoleUser), &notificationv1.CreateNotificationRequest{
		UserId: 8, Kind: "login", Message: "signed in",
	})

	resp, err := srv.ListNotifications(asPrincipal(7, auth.RoleUser), &notificationv1.ListNotificationsRequest{})
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(resp.GetNotifications()) != 1 {
		t.Fatalf("got %d notifications, want 1", len(resp.GetNotifications()))
	}
	if resp.GetNotifications()[0].GetUserId() != 7 {
		t.Error("listed another user's notification")
	}
}
