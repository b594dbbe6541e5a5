// Package service implements link shortening, resolution, and ownership
// checks for the shortener service.
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/events"
	"shortlink-platform/backend/internal/events/producer"
	"shortlink-platform/backend/internal/link/domain"
)

// Sentinel errors; handlers map them to transport codes.
var (
	ErrNotFound  = errors.New("link not found")
	ErrForbidden = errors.New("link owned by another user")
)

const (
	codeLength      = 7
	codeAlphabet    = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxCodeAttempts = 3
)

// LinkRepo is the minimal repository the link service needs.
type LinkRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Link, error)
	Create(ctx context.Context, l *domain.Link) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*domain.Link, error)
	Delete(ctx context.Context, code string) error
}

// LinkService owns link lifecycle. Visit events go to Kafka best-effort; the
// worker turns them into visit counts and owner notifications.
type LinkService struct {
	links  LinkRepo
	visits producer.Producer
	logger zerolog.Logger
}

// NewLinkService returns a LinkService. visits may be nil when the event
// pipeline is not wired.
func NewLinkService(links LinkRepo, visits producer.Producer, logger zerolog.Logger) *LinkService {
	return &LinkService{links: links, visits: visits, logger: logger}
}

// Shorten creates a link owned by the caller with a fresh random code.
func (s *LinkService) Shorten(ctx context.Context, owner auth.Principal, targetURL string) (*domain.Link, error) {
	if err := domain.ValidateTargetURL(targetURL); err != nil {
		return nil, err
	}
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode(codeLength)
		if err != nil {
			return nil, err
		}
		existing, err := s.links.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		link := &domain.Link{
			Code:      code,
			TargetURL: targetURL,
			OwnerID:   owner.UserID,
			CreatedAt: time.Now().UTC(),
		}
		if err := link.Validate(); err != nil {
			return nil, err
		}
		if err := s.links.Create(ctx, link); err != nil {
			return nil, err
		}
		return link, nil
	}
	return nil, fmt.Errorf("could not allocate a unique code after %d attempts", maxCodeAttempts)
}

// Resolve returns the link for code and emits a visit event. visitorID is
// zero for anonymous visitors.
func (s *LinkService) Resolve(ctx context.Context, code string, visitorID int64) (*domain.Link, error) {
	link, err := s.links.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrNotFound
	}
	s.emitVisit(ctx, link, visitorID)
	return link, nil
}

// List pages through the owner's links.
func (s *LinkService) List(ctx context.Context, owner auth.Principal, limit, offset int32) ([]*domain.Link, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.links.ListByOwner(ctx, owner.UserID, limit, offset)
}

// Delete removes a link. Only the owner or an admin may delete it.
func (s *LinkService) Delete(ctx context.Context, caller auth.Principal, code string) error {
	link, err := s.links.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrNotFound
	}
	if link.OwnerID != caller.UserID && !caller.IsAdmin() {
		return ErrForbidden
	}
	return s.links.Delete(ctx, code)
}

func (s *LinkService) emitVisit(ctx context.Context, link *domain.Link, visitorID int64) {
	if s.visits == nil {
		return
	}
	event := events.LinkVisited{
		Code:      link.Code,
		OwnerID:   link.OwnerID,
		VisitorID: visitorID,
		VisitedAt: time.Now().UTC(),
	}
	if err := s.visits.Emit(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("code", link.Code).Msg("visit event emit failed")
	}
}

// randomCode returns n characters drawn uniformly from the base62 alphabet.
func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf), nil
}
