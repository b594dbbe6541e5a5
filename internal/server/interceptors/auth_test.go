package interceptors

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/security"
)

func testCodec(t *testing.T) *security.TokenCodec {
	t.Helper()
	codec, err := security.NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	return codec
}

func incomingCtx(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	}))
}

func TestAuthUnary_NoToken_PassesThroughAnonymous(t *testing.T) {
	interceptor := AuthUnary(testCodec(t))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		if _, ok := auth.PrincipalFrom(ctx); ok {
			t.Error("anonymous call must not carry a principal")
		}
		return "ok", nil
	}
	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/link.v1.LinkService/ResolveLink"}, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "ok" {
		t.Errorf("resp = %v", resp)
	}
}

func TestAuthUnary_ValidToken_InjectsPrincipal(t *testing.T) {
	codec := testCodec(t)
	token, _, err := codec.IssueAccess(7, "a@x.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	interceptor := AuthUnary(codec)

	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		p, ok := auth.PrincipalFrom(ctx)
		if !ok {
			t.Fatal("principal missing")
		}
		if p.UserID != 7 || p.Email != "a@x.com" || p.Role != auth.RoleAdmin {
			t.Errorf("principal = %+v", p)
		}
		if tok, ok := auth.BearerTokenFrom(ctx); !ok || tok != token {
			t.Error("bearer token not carried for onward propagation")
		}
		return "ok", nil
	}
	if _, err := interceptor(incomingCtx(token), "req", &grpc.UnaryServerInfo{FullMethod: "/x.Service/M"}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if !called {
		t.Fatal("handler not invoked")
	}
}

func TestAuthUnary_InvalidToken_TerminatesCall(t *testing.T) {
	interceptor := AuthUnary(testCodec(t))
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run for an invalid token")
		return nil, nil
	}
	_, err := interceptor(incomingCtx("garbage"), "req", &grpc.UnaryServerInfo{FullMethod: "/x.Service/M"}, handler)
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated {
		t.Errorf("err = %v, want Unauthenticated status", err)
	}
}

func TestAuthUnary_RefreshTokenNeverAuthenticates(t *testing.T) {
	codec := testCodec(t)
	refresh, _, _, err := codec.IssueRefresh(7, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	interceptor := AuthUnary(codec)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run for a refresh token")
		return nil, nil
	}
	_, err = interceptor(incomingCtx(refresh), "req", &grpc.UnaryServerInfo{FullMethod: "/x.Service/M"}, handler)
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated {
		t.Errorf("err = %v, want Unauthenticated status", err)
	}
}

func TestAuthUnary_ExpiredToken(t *testing.T) {
	codec, err := security.NewTestTokenCodec(-time.Second, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	token, _, err := codec.IssueAccess(7, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	interceptor := AuthUnary(codec)
	_, err = interceptor(incomingCtx(token), "req", &grpc.UnaryServerInfo{FullMethod: "/x.Service/M"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	if st, ok := status.FromError(err); !ok || st.Code() != codes.Unauthenticated {
		t.Errorf("err = %v, want Unauthenticated status", err)
	}
}

func TestPropagateUnary_AttachesToken(t *testing.T) {
	interceptor := PropagateUnary()
	ctx := auth.WithBearerToken(context.Background(), "tok-123")

	invoked := false
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		invoked = true
		md, ok := metadata.FromOutgoingContext(ctx)
		if !ok {
			t.Fatal("no outgoing metadata")
		}
		vals := md.Get("authorization")
		if len(vals) != 1 || vals[0] != "Bearer tok-123" {
			t.Errorf("authorization = %v", vals)
		}
		return nil
	}
	if err := interceptor(ctx, "/x.Service/M", nil, nil, nil, invoker); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if !invoked {
		t.Fatal("invoker not called")
	}
}

func TestPropagateUnary_NoTokenSendsUnmodified(t *testing.T) {
	interceptor := PropagateUnary()
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		if md, ok := metadata.FromOutgoingContext(ctx); ok && len(md.Get("authorization")) > 0 {
			t.Errorf("unexpected authorization metadata: %v", md)
		}
		return nil
	}
	if err := interceptor(context.Background(), "/x.Service/M", nil, nil, nil, invoker); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name string
		md   map[string]string
		want string
	}{
		{"standard", map[string]string{"authorization": "Bearer abc"}, "abc"},
		{"case-insensitive scheme", map[string]string{"authorization": "bearer abc"}, "abc"},
		{"missing header", map[string]string{}, ""},
		{"wrong scheme", map[string]string{"authorization": "Basic abc"}, ""},
		{"empty value", map[string]string{"authorization": ""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := metadata.NewIncomingContext(context.Background(), metadata.New(tt.md))
			if got := extractBearer(ctx); got != tt.want {
				t.Errorf("extractBearer = %q, want %q", got, tt.want)
			}
		})
	}
}
