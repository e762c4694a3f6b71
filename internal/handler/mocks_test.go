package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"panelboard/internal/middleware"
	"panelboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockPanelRepository struct {
	mock.Mock
}

func (m *MockPanelRepository) Create(ctx context.Context, panel *model.Panel) error {
	args := m.Called(ctx, panel)
	if args.Error(0) == nil {
		panel.ID = 1
	}
	return args.Error(0)
}

func (m *MockPanelRepository) GetOwned(ctx context.Context, ownerID uint) ([]model.Panel, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Panel), args.Error(1)
}

func (m *MockPanelRepository) GetByID(ctx context.Context, id uint) (*model.Panel, error) {
	args := m.Called(ctx, id)
	panel := args.Get(0)
	if panel == nil {
		return nil, args.Error(1)
	}
	return panel.(*model.Panel), args.Error(1)
}

func (m *MockPanelRepository) Update(ctx context.Context, panel *model.Panel) error {
	return m.Called(ctx, panel).Error(0)
}

func (m *MockPanelRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	if args.Error(0) == nil {
		card.ID = 1
	}
	return args.Error(0)
}

func (m *MockCardRepository) GetByPanelID(ctx context.Context, panelID uint) ([]model.Card, error) {
	args := m.Called(ctx, panelID)
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) GetInPanel(ctx context.Context, panelID, cardID uint) (*model.Card, error) {
	args := m.Called(ctx, panelID, cardID)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, panelID, cardID uint) error {
	return m.Called(ctx, panelID, cardID).Error(0)
}

var alice = &model.User{ID: 1, Username: "alice"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	return gin.New()
}

// asUser stands in for the token middleware.
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityKey, user)
		c.Next()
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}
