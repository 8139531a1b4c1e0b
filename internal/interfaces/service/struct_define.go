// Package service
package service

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
	"time"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	Created             HttpCode = 201
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

// Claims is the JWT payload for both access and refresh tokens. The Refresh
// flag plus the distinct signing secret keep the two token families apart.
type Claims struct {
	Uid      uint   `json:"uid"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	Refresh  bool   `json:"refresh"`
	config   *c.JWTConfig
	jwt.RegisteredClaims
}

type JwtHeader struct {
	Uid   uint
	Level int
}

func (header *JwtHeader) AuthLevel() operation.AuthLevel {
	return operation.AuthLevel(header.Level)
}

func NewClaims(config *c.JWTConfig, user *operation.User, refresh bool) *Claims {
	expiredDuration := config.AccessDuration
	if refresh {
		expiredDuration = config.RefreshDuration
	}
	return &Claims{
		Uid:      user.ID,
		Username: user.Username,
		Level:    user.Level,
		Refresh:  refresh,
		config:   config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "FlightlineServer",
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	secret := claim.config.AccessSecret
	if claim.Refresh {
		secret = claim.config.RefreshSecret
	}
	tokenString, _ := token.SignedString([]byte(secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "invalid parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "missing parameter", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "insufficient authorization level", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "internal server error", ServerInternalError}
	ErrUserNotFound          = ApiStatus{"USER_NOT_FOUND", "user does not exist", NotFound}
	ErrFlightNotFound        = ApiStatus{"FLIGHT_NOT_FOUND", "flight does not exist", NotFound}
	ErrAircraftNotFound      = ApiStatus{"AIRCRAFT_NOT_FOUND", "aircraft does not exist", NotFound}
	ErrImageNotFound         = ApiStatus{"IMAGE_NOT_FOUND", "image does not exist", NotFound}
	ErrUsernameConflict      = ApiStatus{"USERNAME_CONFLICT", "username already exists", Conflict}
	ErrTailNoConflict        = ApiStatus{"TAIL_NO_CONFLICT", "tail number already exists", Conflict}
	ErrValidationFailed      = ApiStatus{"VALIDATION_FAILED", "field value failed validation", BadRequest}
	ErrInvalidField          = ApiStatus{"INVALID_FIELD", "unknown field name", BadRequest}
	ErrInvalidCredentials    = ApiStatus{"INVALID_CREDENTIALS", "wrong username or password", Unauthorized}
	ErrInvalidToken          = ApiStatus{"INVALID_TOKEN", "malformed token or bad signature", Unauthorized}
	ErrTokenExpired          = ApiStatus{"TOKEN_EXPIRED", "token has expired", Unauthorized}
	ErrTokenRevoked          = ApiStatus{"TOKEN_REVOKED", "token has been revoked", Unauthorized}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "missing or malformed JWT", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "invalid or expired JWT", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "unknown JWT parse error", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError runs a store operation and maps its sentinel
// errors onto the API taxonomy.
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrUsernameCheck):
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	case errors.Is(err, operation.ErrUsernameTaken):
		return nil, NewApiResponse[T](&ErrUsernameConflict, Unsatisfied, nil)
	case errors.Is(err, operation.ErrTailNoTaken):
		return nil, NewApiResponse[T](&ErrTailNoConflict, Unsatisfied, nil)
	case errors.Is(err, operation.ErrUserNotFound):
		return nil, NewApiResponse[T](&ErrUserNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrFlightNotFound):
		return nil, NewApiResponse[T](&ErrFlightNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAircraftNotFound):
		return nil, NewApiResponse[T](&ErrAircraftNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrImageNotFound):
		return nil, NewApiResponse[T](&ErrImageNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrUnknownField):
		return nil, NewApiResponse[T](&ErrInvalidField, Unsatisfied, nil)
	case err != nil:
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}

// RequireLevel rejects callers below the given authorization level.
func RequireLevel[T any](header *JwtHeader, min operation.AuthLevel) *ApiResponse[T] {
	if !header.AuthLevel().AtLeast(min) {
		return NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
	}
	return nil
}
