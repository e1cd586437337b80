package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dito-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Save(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) LowStock(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	catalogue := []model.Product{
		{ID: "dito-sim", Name: "DITO SIM Starter", Price: 49},
		{ID: "dito-router", Name: "DITO Home Router", Price: 1990},
	}

	tests := []struct {
		name           string
		method         string
		url            string
		mockLimit      int
		mockOffset     int
		mockReturn     []model.Product
		expectedStatus int
		expectedCount  int
		expectService  bool
	}{
		{
			name:           "Defaults",
			method:         http.MethodGet,
			url:            "/api/products",
			mockLimit:      100,
			mockOffset:     0,
			mockReturn:     catalogue,
			expectedStatus: http.StatusOK,
			expectedCount:  2,
			expectService:  true,
		},
		{
			name:           "Explicit pagination",
			method:         http.MethodGet,
			url:            "/api/products?limit=1&offset=1",
			mockLimit:      1,
			mockOffset:     1,
			mockReturn:     catalogue[1:],
			expectedStatus: http.StatusOK,
			expectedCount:  1,
			expectService:  true,
		},
		{
			name:           "Malformed limit falls back",
			method:         http.MethodGet,
			url:            "/api/products?limit=banana",
			mockLimit:      100,
			mockOffset:     0,
			mockReturn:     catalogue,
			expectedStatus: http.StatusOK,
			expectedCount:  2,
			expectService:  true,
		},
		{
			name:           "Empty catalogue serialises as empty array",
			method:         http.MethodGet,
			url:            "/api/products",
			mockLimit:      100,
			mockOffset:     0,
			mockReturn:     nil,
			expectedStatus: http.StatusOK,
			expectedCount:  0,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			url:            "/api/products",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetAll", mock.Anything, tt.mockLimit, tt.mockOffset).
					Return(tt.mockReturn, nil)
			}

			req := httptest.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()

			handler.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
				assert.Len(t, products, tt.expectedCount)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	router := &model.Product{ID: "dito-router", Name: "DITO Home Router", Price: 1990}

	tests := []struct {
		name           string
		url            string
		mockID         string
		mockReturn     *model.Product
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Found",
			url:            "/api/products/dito-router",
			mockID:         "dito-router",
			mockReturn:     router,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			url:            "/api/products/no-such-product",
			mockID:         "no-such-product",
			mockReturn:     nil,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.mockID).Return(tt.mockReturn, nil)
			}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_Save(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Valid product", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Save", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

		body, err := json.Marshal(model.Product{Name: "DITO Pocket WiFi", Price: 990})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Save(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Validation failure", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("Save", mock.Anything, mock.AnythingOfType("*model.Product")).
			Return(model.NewDomainError(model.ErrCodeMissingField, "name is required"))

		body, err := json.Marshal(model.Product{Price: 990})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Save(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()

		handler.Save(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Save")
	})
}

func TestProductHandler_LowStock(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCatalogService)
	handler := NewProductHandler(mockService, logger)

	mockService.On("LowStock", mock.Anything).Return([]model.Product{
		{ID: "dito-pocket", Stock: 3, MinStockLevel: 5},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products/low-stock", nil)
	w := httptest.NewRecorder()

	handler.LowStock(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "dito-pocket", products[0].ID)
}
