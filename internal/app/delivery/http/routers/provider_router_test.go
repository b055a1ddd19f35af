package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/delivery/http/controllers"
	"clinicport-service/internal/app/delivery/http/middlewares"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProviderUsecase struct {
	mock.Mock
}

func (m *MockProviderUsecase) ListProviders(ctx context.Context, page, pageSize int) ([]responses.Provider, int64, error) {
	args := m.Called(ctx, page, pageSize)
	providers, _ := args.Get(0).([]responses.Provider)
	return providers, args.Get(1).(int64), args.Error(2)
}

func (m *MockProviderUsecase) GetProvider(ctx context.Context, providerID string) (*responses.Provider, error) {
	args := m.Called(ctx, providerID)
	provider, _ := args.Get(0).(*responses.Provider)
	return provider, args.Error(1)
}

func (m *MockProviderUsecase) PutWeeklySchedule(ctx context.Context, request *requests.PutWeeklySchedule) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockProviderUsecase) PutDateOverride(ctx context.Context, request *requests.PutDateOverride) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockProviderUsecase) DeleteDateOverride(ctx context.Context, request *requests.DeleteDateOverride) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockProviderUsecase) ListSlots(ctx context.Context, request *requests.ListSlots) (*responses.SlotList, error) {
	args := m.Called(ctx, request)
	slots, _ := args.Get(0).(*responses.SlotList)
	return slots, args.Error(1)
}

func (m *MockProviderUsecase) GetCalendar(ctx context.Context, request *requests.GetCalendar) (*responses.Calendar, error) {
	args := m.Called(ctx, request)
	calendar, _ := args.Get(0).(*responses.Calendar)
	return calendar, args.Error(1)
}

func newProviderTestRouter(t *testing.T, apiKey string) (chi.Router, *MockProviderUsecase) {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: apiKey,
		},
	}

	mockProviderUsecase := new(MockProviderUsecase)
	providerController := controllers.NewProviderController(logger, mockProviderUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachProviderRoutes(router, middlewareInstance, providerController)

	return router, mockProviderUsecase
}

func TestProviderRouter_PublicEndpoints(t *testing.T) {
	router, mockProviderUsecase := newProviderTestRouter(t, "test-api-key")

	t.Run("List Providers", func(t *testing.T) {
		mockProviderUsecase.On("ListProviders", mock.Anything, 1, 20).
			Return([]responses.Provider{{ID: "prov-1", Name: "Dr. Sari"}}, int64(1), nil).Once()

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockProviderUsecase.AssertExpectations(t)
	})

	t.Run("List Slots Defaults Width", func(t *testing.T) {
		mockProviderUsecase.On("ListSlots", mock.Anything, mock.MatchedBy(func(request *requests.ListSlots) bool {
			return request.ProviderID == "prov-1" &&
				request.Date == "2026-03-02" &&
				request.WidthMinutes == 20
		})).Return(&responses.SlotList{ProviderID: "prov-1", Date: "2026-03-02"}, nil).Once()

		req := httptest.NewRequest("GET", "/prov-1/slots?date=2026-03-02", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockProviderUsecase.AssertExpectations(t)
	})

	t.Run("List Slots Without Date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/prov-1/slots", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProviderUsecase.AssertNotCalled(t, "ListSlots")
	})

	t.Run("Get Calendar", func(t *testing.T) {
		mockProviderUsecase.On("GetCalendar", mock.Anything, mock.MatchedBy(func(request *requests.GetCalendar) bool {
			return request.ProviderID == "prov-1" && request.Month == "2026-03"
		})).Return(&responses.Calendar{ProviderID: "prov-1", Month: "2026-03"}, nil).Once()

		req := httptest.NewRequest("GET", "/prov-1/calendar?month=2026-03", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockProviderUsecase.AssertExpectations(t)
	})
}

func TestProviderRouter_ScheduleEndpointsRequireAPIKey(t *testing.T) {
	testAPIKey := "test-superadmin-api-key-12345"
	router, mockProviderUsecase := newProviderTestRouter(t, testAPIKey)

	scheduleBody := func() *bytes.Buffer {
		body := map[string]interface{}{
			"days": map[string]interface{}{
				"monday": map[string]interface{}{
					"enabled": true,
					"time_ranges": []map[string]string{
						{"start": "08:00", "end": "12:00"},
					},
				},
			},
		}
		jsonBody, _ := json.Marshal(body)
		return bytes.NewBuffer(jsonBody)
	}

	t.Run("Put Schedule with Valid API Key", func(t *testing.T) {
		mockProviderUsecase.On("PutWeeklySchedule", mock.Anything, mock.MatchedBy(func(request *requests.PutWeeklySchedule) bool {
			return request.ProviderID == "prov-1"
		})).Return(nil).Once()

		req := httptest.NewRequest("PUT", "/prov-1/schedule", scheduleBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Api-Key", testAPIKey)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockProviderUsecase.AssertExpectations(t)
	})

	t.Run("Put Schedule without API Key", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/prov-1/schedule", scheduleBody())
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockProviderUsecase.AssertNotCalled(t, "PutWeeklySchedule")
	})

	t.Run("Put Schedule with Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/prov-1/schedule", scheduleBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Api-Key", "wrong-key")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockProviderUsecase.AssertNotCalled(t, "PutWeeklySchedule")
	})

	t.Run("Delete Override with Valid API Key", func(t *testing.T) {
		mockProviderUsecase.On("DeleteDateOverride", mock.Anything, mock.MatchedBy(func(request *requests.DeleteDateOverride) bool {
			return request.ProviderID == "prov-1" && request.Date == "2026-03-02"
		})).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/prov-1/overrides/2026-03-02", nil)
		req.Header.Set("X-Api-Key", testAPIKey)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockProviderUsecase.AssertExpectations(t)
	})
}
