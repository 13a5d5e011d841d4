package web

import (
	"context"
	"net/http"

	"github.com/openexo/datagate/internal/core"
)

// WithRequestMetadata adds the client IP and User-Agent to context so the
// service layer can include them in its logs.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	// RemoteAddr has already been rewritten by the TrustedRealIP middleware
	ctx = core.ContextWithIPAddress(ctx, r.RemoteAddr)
	ctx = core.ContextWithUserAgent(ctx, r.Header.Get("User-Agent"))
	return ctx
}
