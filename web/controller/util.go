package controller

import (
	"net/http"
	"strconv"

	"echo-journal/logger"
	"echo-journal/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonError sends a structured error body. Failed store calls are logged;
// every failing code path must end up here so no request is left hanging.
func jsonError(c *gin.Context, statusCode int, msg string, err error) {
	m := msg
	if err != nil {
		m = msg + " (" + err.Error() + ")"
		logger.Warning(msg+":", err)
	}
	c.JSON(statusCode, entity.ErrorResponse{Error: m})
}

// pathId parses the :id path parameter, answering 400 on a malformed id.
func pathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
