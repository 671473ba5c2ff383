package reqid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(header string) (ctxID, respID string) {
	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = FromCtx(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(Header)
}

func TestMiddlewareGeneratesID(t *testing.T) {
	ctxID, respID := serve("")
	assert.Len(t, ctxID, 32)
	assert.Equal(t, ctxID, respID)
}

func TestMiddlewareReusesUpstreamID(t *testing.T) {
	ctxID, respID := serve("gateway-42")
	assert.Equal(t, "gateway-42", ctxID)
	assert.Equal(t, "gateway-42", respID)
}

func TestMiddlewareRejectsUnsafeUpstreamID(t *testing.T) {
	for _, bad := range []string{"a b", "x\nlevel=ERROR", strings.Repeat("a", 65)} {
		ctxID, _ := serve(bad)
		assert.NotEqual(t, bad, ctxID)
		assert.Len(t, ctxID, 32)
	}
}
