package middleware

import (
	"errors"

	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	"github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenGuardMiddleware runs after the JWT middleware. It rejects refresh
// tokens presented as access tokens and anything on the revocation list,
// then resolves the account so a deleted user's tokens die with it.
func TokenGuardMiddleware(
	logger log.LoggerInterface,
	users operation.UserOperationInterface,
	tokens operation.TokenOperationInterface,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return service.NewErrorResponse(c, &service.ErrInvalidToken)
			}
			claims, ok := token.Claims.(*service.Claims)
			if !ok {
				return service.NewErrorResponse(c, &service.ErrInvalidToken)
			}
			if claims.Refresh {
				return service.NewErrorResponse(c, &service.ErrInvalidToken)
			}
			revoked, err := tokens.IsTokenRevoked(token.Raw)
			if err != nil {
				logger.ErrorF("TokenGuardMiddleware revocation lookup error: %v", err)
				return service.NewErrorResponse(c, &service.ErrDatabaseFail)
			}
			if revoked {
				return service.NewErrorResponse(c, &service.ErrTokenRevoked)
			}
			user, err := users.GetUserByUid(claims.Uid)
			if err != nil {
				if errors.Is(err, operation.ErrUserNotFound) {
					return service.NewApiResponse[any](&service.ErrUserNotFound, service.Unauthorized, nil).Response(c)
				}
				logger.ErrorF("TokenGuardMiddleware user lookup error: %v", err)
				return service.NewErrorResponse(c, &service.ErrDatabaseFail)
			}
			// Level changes take effect on the next request, not the next refresh.
			claims.Level = user.Level
			return next(c)
		}
	}
}
