package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dito-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) QuoteShipping(ctx context.Context, req *model.ShippingQuoteRequest) (*model.ShippingQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShippingQuote), args.Error(1)
}

func (m *MockOrderService) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) SetFulfillment(ctx context.Context, id uuid.UUID, req *model.FulfillmentRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderHandler_Checkout(t *testing.T) {
	logger := zerolog.Nop()

	placed := &model.Order{
		ID:     uuid.New(),
		Number: "ORD-20260830-AB12CD34",
		Total:  2140,
		Status: model.OrderPending,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name: "Success",
			requestBody: &model.CheckoutRequest{
				CartID:        "cart-1",
				PaymentMethod: "gcash",
			},
			mockReturn:     placed,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name: "Cart not found",
			requestBody: &model.CheckoutRequest{
				CartID:        "gone",
				PaymentMethod: "gcash",
			},
			mockError:      model.ErrCartNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name: "Empty cart",
			requestBody: &model.CheckoutRequest{
				CartID:        "cart-1",
				PaymentMethod: "gcash",
			},
			mockError:      model.ErrEmptyCart,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name: "Missing shipping name",
			requestBody: &model.CheckoutRequest{
				CartID: "cart-1",
			},
			mockError:      model.NewDomainError(model.ErrCodeMissingField, "shippingDetails.firstName is required"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name: "Service internal error",
			requestBody: &model.CheckoutRequest{
				CartID:        "cart-1",
				PaymentMethod: "gcash",
			},
			mockError:      errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			if tt.expectService {
				mockService.On("Checkout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Checkout(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	shipped := &model.Order{ID: orderID, Status: model.OrderShipped}

	tests := []struct {
		name           string
		rawID          string
		requestBody    interface{}
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			rawID:          orderID.String(),
			requestBody:    model.StatusUpdateRequest{Status: model.OrderShipped},
			mockReturn:     shipped,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid order ID",
			rawID:          "not-a-uuid",
			requestBody:    model.StatusUpdateRequest{Status: model.OrderShipped},
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Order not found",
			rawID:          orderID.String(),
			requestBody:    model.StatusUpdateRequest{Status: model.OrderShipped},
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Unknown status",
			rawID:          orderID.String(),
			requestBody:    model.StatusUpdateRequest{Status: "Teleported"},
			mockError:      model.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			body, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			if tt.expectService {
				mockService.On("UpdateStatus", mock.Anything, orderID, mock.AnythingOfType("model.OrderStatus")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+tt.rawID+"/status", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req, tt.rawID)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestOrderHandler_Quote(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, logger)

	mockService.On("QuoteShipping", mock.Anything, mock.AnythingOfType("*model.ShippingQuoteRequest")).
		Return(&model.ShippingQuote{Fee: 150, Zone: "Luzon", Days: "3-5 Days"}, nil)

	body, err := json.Marshal(model.ShippingQuoteRequest{Subtotal: 1990, Province: "Cavite"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/shipping", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Quote(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var quote model.ShippingQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 150.0, quote.Fee)
	assert.Equal(t, "Luzon", quote.Zone)
}
