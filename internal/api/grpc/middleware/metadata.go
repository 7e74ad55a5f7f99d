package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const bearerPrefix = "Bearer "

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 || !strings.HasPrefix(authHeaders[0], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeaders[0], bearerPrefix))
}
