package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/logger"
)

func TestRespondDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid input maps to 400",
			err:        domain.NewInvalidInput("unknown vote choice: abstain"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
		},
		{
			name:       "wrapped invalid input maps to 400",
			err:        fmt.Errorf("grant power: %w", domain.NewInvalidInput("unknown power type: invincibility")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
		},
		{
			name:       "missing target maps to 400",
			err:        domain.ErrTargetRequired,
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
		},
		{
			name:       "missing grant maps to 404",
			err:        domain.ErrGrantNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "ownership maps to 403",
			err:        domain.ErrGrantNotOwned,
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name:       "other declines map to 409",
			err:        domain.ErrAlreadyVoted,
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
		{
			name:       "infrastructure fault maps to 500",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondDomainError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}
