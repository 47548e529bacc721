package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaferdrn0/Fzy-sub000/internal/config"
	"github.com/zaferdrn0/Fzy-sub000/internal/session"
)

// CheckAuth must answer 200 with is_logged_in=false for any request
// that does not resolve to a live session, never an error status.
func TestCheckAuth_NotLoggedIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{SessionSecret: "secret"}
	h := NewAuthHandler(nil, cfg, session.NewStore(nil, time.Minute), zap.NewNop())

	r := gin.New()
	r.GET("/user/check-auth", h.CheckAuth)

	tests := []struct {
		name   string
		cookie string
	}{
		{"no cookie", ""},
		{"garbage cookie", "junk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/check-auth", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var body struct {
				IsLoggedIn bool `json:"is_logged_in"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.IsLoggedIn {
				t.Error("is_logged_in = true, want false")
			}
		})
	}
}
