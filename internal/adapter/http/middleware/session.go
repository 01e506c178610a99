package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/usecase/interfaces"
	"freight_settlement/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	SessionHeader = "X-Session-Token"

	ctxPermissions = "permissions"
)

var (
	errMissingSession = pkg.NewDomainErrorSimple("MISSING_SESSION", "Missing session token", http.StatusUnauthorized)
	errInvalidSession = pkg.NewDomainErrorSimple("INVALID_SESSION", "Session rejected by the back office", http.StatusUnauthorized)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not permitted for this session", http.StatusForbidden)
	errSessionRemote  = pkg.NewDomainErrorSimple("REMOTE_UNAVAILABLE", "Back office unavailable", http.StatusBadGateway)
)

// PermissionStore resolves the permissions granted to a session token.
type PermissionStore interface {
	Permissions(ctx context.Context, token string) (entities.Permissions, error)
}

func Token(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(SessionHeader))
}

// RequireSession loads the permissions of the caller's token into the
// context.
func RequireSession(store PermissionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		perms, err := store.Permissions(c.Request.Context(), token)
		if err != nil {
			var remoteErr *interfaces.RemoteError
			if errors.As(err, &remoteErr) {
				c.AbortWithStatusJSON(errInvalidSession.HTTPStatus, errInvalidSession.ToHTTPError())
				return
			}
			log.WithError(err).Warn("[http][session] permission lookup failed")
			c.AbortWithStatusJSON(errSessionRemote.HTTPStatus, errSessionRemote.ToHTTPError())
			return
		}

		c.Set(ctxPermissions, perms)
		c.Next()
	}
}

// RequirePermission must run after RequireSession.
func RequirePermission(grant string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, ok := Permissions(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}
		if !perms.Has(grant) {
			log.WithFields(log.Fields{"user": perms.User, "grant": grant}).Info("[http][session] permission denied")
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func Permissions(c *gin.Context) (entities.Permissions, bool) {
	v, ok := c.Get(ctxPermissions)
	if !ok {
		return entities.Permissions{}, false
	}
	perms, ok := v.(entities.Permissions)
	return perms, ok
}

// Operator is the user name of the session, empty when there is none.
func Operator(c *gin.Context) string {
	perms, _ := Permissions(c)
	return perms.User
}
