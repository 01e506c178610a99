package handlers

import (
	"errors"
	"net/http"

	"freight_settlement/internal/usecase/interfaces"
	"freight_settlement/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// mapRemoteError handles failures of the back office shared by every route.
// A rejected request keeps the remote message verbatim.
func mapRemoteError(err error) (*pkg.AppError, bool) {
	var remoteErr *interfaces.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		return pkg.NewDomainError("REMOTE_REJECTED", remoteErr.Message, err, http.StatusUnprocessableEntity), true
	case errors.Is(err, interfaces.ErrRemoteUnavailable):
		return pkg.NewDomainError("REMOTE_UNAVAILABLE", "Back office unavailable", err, http.StatusBadGateway), true
	default:
		return nil, false
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
