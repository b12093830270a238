package register_user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshare/DS-RentalService/internal/service/users"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubService struct {
	resp *userModels.UserResponse
	err  error
}

func (s *stubService) Register(ctx context.Context, req *userModels.RegisterRequest) (*userModels.UserResponse, error) {
	return s.resp, s.err
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *stubService
		wantStatus int
	}{
		{
			name: "created",
			body: `{"name":"Alice","email":"alice@example.com","role":"client"}`,
			service: &stubService{resp: &userModels.UserResponse{
				ID: "u1", Name: "Alice", Email: "alice@example.com", Role: "client",
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			service:    &stubService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field is rejected",
			body:       `{"name":"Alice","email":"a@b.com","role":"client","admin":true}`,
			service:    &stubService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "email taken",
			body:       `{"name":"Alice","email":"alice@example.com","role":"client"}`,
			service:    &stubService{err: users.ErrEmailTaken},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid role",
			body:       `{"name":"Alice","email":"alice@example.com","role":"admin"}`,
			service:    &stubService{err: users.ErrInvalidRole},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal error",
			body:       `{"name":"Alice","email":"alice@example.com","role":"client"}`,
			service:    &stubService{err: users.ErrInternal},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(tt.service, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp userModels.UserResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "u1", resp.ID)
			}
		})
	}
}
