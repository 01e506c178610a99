package handlers

import (
	"net/http"

	"freight_settlement/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// SessionTerminator ends an operator session.
type SessionTerminator interface {
	Logout(token string) bool
}

type SessionHandler struct {
	sessions SessionTerminator
}

func NewSessionHandler(sessions SessionTerminator) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Logout stops the permission refresher of the caller's token. It succeeds
// whether or not the session was known.
func (h *SessionHandler) Logout(c *gin.Context) {
	token := middleware.Token(c)
	if token == "" {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.WithDetails("missing "+middleware.SessionHeader).ToHTTPError())
		return
	}
	h.sessions.Logout(token)
	c.Status(http.StatusNoContent)
}
