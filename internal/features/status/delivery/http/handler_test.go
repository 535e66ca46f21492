package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/middleware"
	"raider-registry-backend/internal/features/status/models"
)

type fakeStatusService struct {
	created []string
}

func (f *fakeStatusService) Create(_ context.Context, clientName string) (*models.StatusCheck, error) {
	if clientName == "" {
		return nil, errors.NewValidationError("clientName", "client name cannot be empty")
	}
	f.created = append(f.created, clientName)
	return &models.StatusCheck{ID: "id-1", ClientName: clientName, Timestamp: time.Unix(0, 0).UTC()}, nil
}

func (f *fakeStatusService) List(context.Context) ([]*models.StatusCheck, error) {
	return []*models.StatusCheck{{ID: "id-1", ClientName: "frontend"}}, nil
}

func setupRouter(svc *fakeStatusService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Errors(zerolog.Nop()))
	NewStatusHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestStatusCreate(t *testing.T) {
	svc := &fakeStatusService{}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/status", bytes.NewBufferString(`{"clientName":"frontend"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var check models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.Equal(t, "frontend", check.ClientName)
	assert.Equal(t, []string{"frontend"}, svc.created)
}

func TestStatusCreate_Invalid(t *testing.T) {
	r := setupRouter(&fakeStatusService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/status", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusList(t *testing.T) {
	r := setupRouter(&fakeStatusService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var checks []models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
	assert.Len(t, checks, 1)
}
