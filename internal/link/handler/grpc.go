// Package handler exposes the shortener service over gRPC.
package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	linkv1 "shortlink-platform/backend/api/generated/link/v1"
	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/link/domain"
	"shortlink-platform/backend/internal/link/service"
	"shortlink-platform/backend/internal/platform/rbac"
)

// Server implements LinkService (proto server).
type Server struct {
	linkv1.UnimplementedLinkServiceServer
	links *service.LinkService
}

// NewServer returns a new link gRPC server.
func NewServer(links *service.LinkService) *Server {
	return &Server{links: links}
}

// ShortenLink creates a short code owned by the caller.
func (s *Server) ShortenLink(ctx context.Context, req *linkv1.ShortenLinkRequest) (*linkv1.Link, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	link, err := s.links.Shorten(ctx, p, req.GetTargetUrl())
	if err != nil {
		return nil, toStatus(err)
	}
	return linkToProto(link), nil
}

// ResolveLink resolves a code to its target. Anonymous callers are allowed;
// an authenticated principal is recorded as the visitor.
func (s *Server) ResolveLink(ctx context.Context, req *linkv1.ResolveLinkRequest) (*linkv1.ResolveLinkResponse, error) {
	var visitorID int64
	if p, ok := auth.PrincipalFrom(ctx); ok {
		visitorID = p.UserID
	}
	link, err := s.links.Resolve(ctx, req.GetCode(), visitorID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &linkv1.ResolveLinkResponse{TargetUrl: link.TargetURL}, nil
}

// ListLinks pages through the caller's links.
func (s *Server) ListLinks(ctx context.Context, req *linkv1.ListLinksRequest) (*linkv1.ListLinksResponse, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.links.List(ctx, p, req.GetLimit(), req.GetOffset())
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*linkv1.Link, len(items))
	for i, l := range items {
		out[i] = linkToProto(l)
	}
	return &linkv1.ListLinksResponse{Links: out}, nil
}

// DeleteLink removes a link owned by the caller, or any link for admins.
func (s *Server) DeleteLink(ctx context.Context, req *linkv1.DeleteLinkRequest) (*linkv1.DeleteLinkResponse, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.links.Delete(ctx, p, req.GetCode()); err != nil {
		return nil, toStatus(err)
	}
	return &linkv1.DeleteLinkResponse{}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "link not found")
	case errors.Is(err, service.ErrForbidden):
		return status.Error(codes.PermissionDenied, "not the link owner")
	case errors.Is(err, domain.ErrInvalidTarget):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "link operation failed")
	}
}

func linkToProto(l *domain.Link) *linkv1.Link {
	return &linkv1.Link{
		Id:        l.ID,
		Code:      l.Code,
		TargetUrl: l.TargetURL,
		OwnerId:   l.OwnerID,
		Visits:    l.Visits,
		CreatedAt: timestamppb.New(l.CreatedAt),
	}
}
