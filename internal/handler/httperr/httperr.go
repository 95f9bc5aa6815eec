package httperr

import (
	"net/http"

	"commerce-actions/internal/action"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var kindStatus = map[action.Kind]int{
	action.KindInvalidArgument:     http.StatusBadRequest,
	action.KindUnknownAction:       http.StatusNotFound,
	action.KindAuthError:           http.StatusBadGateway,
	action.KindCalendarUnavailable: http.StatusServiceUnavailable,
	action.KindCalendarWriteError:  http.StatusBadGateway,
	action.KindCrmWriteError:       http.StatusBadGateway,
	action.KindBackendUnavailable:  http.StatusServiceUnavailable,
	action.KindTimeout:             http.StatusGatewayTimeout,
	action.KindInternal:            http.StatusInternalServerError,
}

// StatusFor maps an invocation result to an HTTP status. Conflicts are
// outcomes and travel with 200 like successes.
func StatusFor(res action.Result) int {
	if !res.IsFailure() {
		return http.StatusOK
	}
	if status, ok := kindStatus[res.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
