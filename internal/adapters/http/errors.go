package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/dto"
	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// noRoute answers unknown URLs with the gateway's envelope rather than gin's
// plain-text 404.
func noRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(domain.KindInvalidRequest, dto.MessageUnknownRoute))
}

func noMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(domain.KindInvalidRequest, dto.MessageMethodNotFound))
}
