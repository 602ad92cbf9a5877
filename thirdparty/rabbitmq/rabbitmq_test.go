package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpirationDelay(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int64
	}{
		{name: "future", expiresAt: now.Add(24 * time.Hour), want: 86400000},
		{name: "now", expiresAt: now, want: 0},
		{name: "already past", expiresAt: now.Add(-time.Minute), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expirationDelay(tt.expiresAt, now))
		})
	}
}

func TestInternalAPICanceller(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "cancelled", status: http.StatusOK},
		{name: "no longer pending is not retried", status: http.StatusBadRequest},
		{name: "server error is retried", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/order/42/cancel", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewInternalAPICanceller(srv.URL, "secret").CancelExpiredOrder(context.Background(), 42)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
