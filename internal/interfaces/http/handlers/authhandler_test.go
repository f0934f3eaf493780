package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "github.com/lamaran-inc/lamaran/internal/application/user/dto"
	"github.com/lamaran-inc/lamaran/internal/application/user/usecases"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers/testutil"
	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
)

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockRegisterUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*userdto.UserDTO, error) {
	return m.result, m.err
}

type mockCurrentUserUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockCurrentUserUC) Execute(ctx context.Context, userID uint) (*userdto.UserDTO, error) {
	return m.result, m.err
}

func testCookieConfig() config.CookieConfig {
	return config.CookieConfig{Name: "mk_session", Path: "/", SameSite: "lax"}
}

func testUserDTO() *userdto.UserDTO {
	return &userdto.UserDTO{
		ID:        1,
		Email:     "admin@example.com",
		Name:      "Admin",
		CreatedAt: time.Now().UTC(),
	}
}

func newTestAuthHandler(loginUC loginUseCase, registerUC registerUseCase, currentUserUC getCurrentUserUseCase) *AuthHandler {
	return NewAuthHandler(loginUC, registerUC, currentUserUC, testCookieConfig(), testutil.NewMockLogger())
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login sets session cookie", func(t *testing.T) {
		mockUC := &mockLoginUC{result: &usecases.LoginResult{
			User:      testUserDTO(),
			Token:     "signed-token",
			ExpiresIn: 168 * time.Hour,
		}}
		handler := newTestAuthHandler(mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{
			Email:    "admin@example.com",
			Password: "password123",
		})

		handler.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var data userdto.UserDTO
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "admin@example.com", data.Email)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "mk_session", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
	})

	t.Run("invalid credentials return unauthorized", func(t *testing.T) {
		mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid email or password")}
		handler := newTestAuthHandler(mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})

		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		handler := newTestAuthHandler(&mockLoginUC{}, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{
			Email:    "not-an-email",
			Password: "password123",
		})

		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/logout", nil)

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mk_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		mockUC := &mockRegisterUC{result: testUserDTO()}
		handler := newTestAuthHandler(nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", RegisterRequest{
			Email:    "admin@example.com",
			Password: "password123",
			Name:     "Admin",
		})

		handler.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		handler := newTestAuthHandler(nil, &mockRegisterUC{}, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", RegisterRequest{
			Email:    "admin@example.com",
			Password: "short",
			Name:     "Admin",
		})

		handler.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		mockUC := &mockRegisterUC{err: errors.NewDuplicateNameError("an account with this email already exists")}
		handler := newTestAuthHandler(nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", RegisterRequest{
			Email:    "admin@example.com",
			Password: "password123",
			Name:     "Admin",
		})

		handler.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the authenticated user", func(t *testing.T) {
		mockUC := &mockCurrentUserUC{result: testUserDTO()}
		handler := newTestAuthHandler(nil, nil, mockUC)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
		testutil.SetAuthContext(c, 1, "admin@example.com")

		handler.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var data userdto.UserDTO
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, uint(1), data.ID)
	})

	t.Run("missing auth context returns unauthorized", func(t *testing.T) {
		handler := newTestAuthHandler(nil, nil, &mockCurrentUserUC{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)

		handler.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
