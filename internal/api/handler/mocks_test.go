// internal/api/handler/mocks_test.go
package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"msgboard/internal/api"
	"msgboard/internal/api/handler"
	"msgboard/internal/domain"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) ([]domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int64, params domain.UpdateUserParams) (*domain.User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockMessageService is a mock implementation of service.MessageService.
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageService) Create(ctx context.Context, params domain.CreateMessageParams) (*domain.Message, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageService) UpdateContent(ctx context.Context, id int64, content *string) (*domain.Message, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageService) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

// newTestRouter wires the handlers with mocked services behind the real
// router so path params and middleware behave as in production.
func newTestRouter(t *testing.T) (*MockUserService, *MockMessageService, http.Handler) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userSvc := &MockUserService{}
	messageSvc := &MockMessageService{}

	router := api.NewRouter(
		handler.NewUserHandler(userSvc, logger),
		handler.NewMessageHandler(messageSvc, logger),
		logger,
	)
	return userSvc, messageSvc, router
}

// doRequest performs a request against the router and decodes the JSON body.
func doRequest(t *testing.T, router http.Handler, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	decoded := map[string]json.RawMessage{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// errorMessage extracts the "error" field of an error response body.
func errorMessage(t *testing.T, body map[string]json.RawMessage) string {
	t.Helper()

	var msg string
	require.NoError(t, json.Unmarshal(body["error"], &msg))
	return msg
}
