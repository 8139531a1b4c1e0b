package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flightline-dev/flightline/internal/interfaces/global"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	"github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// noopLogger swallows all output so middleware tests stay quiet.
type noopLogger struct{}

func (l *noopLogger) Init(debug bool)                     {}
func (l *noopLogger) ShutdownCallback() global.Callable   { return nil }
func (l *noopLogger) Debug(msg string, v ...interface{})  {}
func (l *noopLogger) DebugF(msg string, v ...interface{}) {}
func (l *noopLogger) Info(msg string, v ...interface{})   {}
func (l *noopLogger) InfoF(msg string, v ...interface{})  {}
func (l *noopLogger) Warn(msg string, v ...interface{})   {}
func (l *noopLogger) WarnF(msg string, v ...interface{})  {}
func (l *noopLogger) Error(msg string, v ...interface{})  {}
func (l *noopLogger) ErrorF(msg string, v ...interface{}) {}
func (l *noopLogger) Fatal(msg string, v ...interface{})  {}
func (l *noopLogger) FatalF(msg string, v ...interface{}) {}

type guardUserOperation struct {
	mock.Mock
}

func (m *guardUserOperation) GetUserByUid(uid uint) (*operation.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.User), args.Error(1)
}

func (m *guardUserOperation) GetUserByUsername(username string) (*operation.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.User), args.Error(1)
}

func (m *guardUserOperation) GetUsers() ([]*operation.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.User), args.Error(1)
}

func (m *guardUserOperation) NewUser(username, password string, level operation.AuthLevel) (*operation.User, error) {
	args := m.Called(username, password, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.User), args.Error(1)
}

func (m *guardUserOperation) AddUser(user *operation.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *guardUserOperation) UpdateUserInfo(user *operation.User, info map[string]interface{}) error {
	args := m.Called(user, info)
	return args.Error(0)
}

func (m *guardUserOperation) UpdateUserPassword(user *operation.User, newPassword string) error {
	args := m.Called(user, newPassword)
	return args.Error(0)
}

func (m *guardUserOperation) DeleteUser(user *operation.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *guardUserOperation) VerifyUserPassword(user *operation.User, password string) bool {
	args := m.Called(user, password)
	return args.Bool(0)
}

func (m *guardUserOperation) IsUsernameTaken(tx *gorm.DB, username string) (bool, error) {
	args := m.Called(tx, username)
	return args.Bool(0), args.Error(1)
}

func (m *guardUserOperation) HasAdminUser() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

type guardTokenOperation struct {
	mock.Mock
}

func (m *guardTokenOperation) RevokeToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *guardTokenOperation) IsTokenRevoked(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}

func callGuard(t *testing.T, users *guardUserOperation, tokens *guardTokenOperation, token *jwt.Token) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if token != nil {
		ctx.Set("user", token)
	}
	nextCalled := false
	handler := TokenGuardMiddleware(&noopLogger{}, users, tokens)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(ctx))
	return rec, nextCalled
}

func accessToken(uid uint, level int) *jwt.Token {
	return &jwt.Token{
		Raw:    "raw-access-token",
		Claims: &service.Claims{Uid: uid, Level: level},
	}
}

func TestTokenGuardMiddleware_PassesValidToken(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)
	tokens.On("IsTokenRevoked", "raw-access-token").Return(false, nil).Once()
	users.On("GetUserByUid", uint(7)).Return(&operation.User{ID: 7, Level: int(operation.LevelUser)}, nil).Once()

	rec, nextCalled := callGuard(t, users, tokens, accessToken(7, int(operation.LevelUser)))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestTokenGuardMiddleware_RevokedTokenRejected(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)
	tokens.On("IsTokenRevoked", "raw-access-token").Return(true, nil).Once()

	rec, nextCalled := callGuard(t, users, tokens, accessToken(7, int(operation.LevelUser)))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
	users.AssertNotCalled(t, "GetUserByUid", mock.Anything)
}

func TestTokenGuardMiddleware_RefreshTokenRejected(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)
	token := &jwt.Token{
		Raw:    "raw-refresh-token",
		Claims: &service.Claims{Uid: 7, Level: int(operation.LevelUser), Refresh: true},
	}

	rec, nextCalled := callGuard(t, users, tokens, token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	tokens.AssertNotCalled(t, "IsTokenRevoked", mock.Anything)
}

// A still-valid token must stop working the moment its account is deleted.
func TestTokenGuardMiddleware_DeletedUserRejected(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)
	tokens.On("IsTokenRevoked", "raw-access-token").Return(false, nil).Once()
	users.On("GetUserByUid", uint(424242)).Return(nil, operation.ErrUserNotFound).Once()

	rec, nextCalled := callGuard(t, users, tokens, accessToken(424242, int(operation.LevelUser)))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
	users.AssertExpectations(t)
}

// Demotions bite on the next request, a stale admin claim does not stick
// around for the rest of the token's lifetime.
func TestTokenGuardMiddleware_LevelFollowsAccount(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)
	tokens.On("IsTokenRevoked", "raw-access-token").Return(false, nil).Once()
	users.On("GetUserByUid", uint(7)).Return(&operation.User{ID: 7, Level: int(operation.LevelUser)}, nil).Once()

	token := accessToken(7, int(operation.LevelAdmin))
	_, nextCalled := callGuard(t, users, tokens, token)

	assert.True(t, nextCalled)
	assert.Equal(t, int(operation.LevelUser), token.Claims.(*service.Claims).Level)
}

func TestTokenGuardMiddleware_LookupFailure(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)
	tokens.On("IsTokenRevoked", "raw-access-token").Return(false, nil).Once()
	users.On("GetUserByUid", uint(7)).Return(nil, errors.New("connection reset")).Once()

	rec, nextCalled := callGuard(t, users, tokens, accessToken(7, int(operation.LevelUser)))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATABASE_ERROR")
}

func TestTokenGuardMiddleware_MissingToken(t *testing.T) {
	users := new(guardUserOperation)
	tokens := new(guardTokenOperation)

	rec, nextCalled := callGuard(t, users, tokens, nil)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
