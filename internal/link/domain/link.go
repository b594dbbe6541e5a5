package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Link maps a short code to a target URL.
type Link struct {
	ID        int64
	Code      string
	TargetURL string
	OwnerID   int64
	Visits    int64
	CreatedAt time.Time
}

// Validate checks the link for persistence.
func (l *Link) Validate() error {
	if l.Code == "" {
		return errors.New("code is required")
	}
	if l.OwnerID == 0 {
		return errors.New("owner is required")
	}
	return ValidateTargetURL(l.TargetURL)
}

// ErrInvalidTarget rejects targets that are not absolute http(s) URLs.
var ErrInvalidTarget = errors.New("target url must be absolute http or https")

// ValidateTargetURL requires an absolute http(s) URL.
func ValidateTargetURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidTarget
	}
	return nil
}
