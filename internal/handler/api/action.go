package api

import (
	"errors"
	"io"
	"net/http"

	"commerce-actions/internal/action"
	reqdto "commerce-actions/internal/handler/dto/request"
	resdto "commerce-actions/internal/handler/dto/response"
	"commerce-actions/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type ActionHandler struct {
	executor action.Executor
}

func NewActionHandler(executor action.Executor) *ActionHandler {
	return &ActionHandler{
		executor: executor,
	}
}

// @Summary Invoke an action
// @Description Run one catalog action with a JSON object of arguments. Conflicts are returned with 200.
// @Tags actions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param name path string true "Action name"
// @Param request body reqdto.ActionArgs false "Action arguments"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} resdto.ActionResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} resdto.ActionResponse
// @Failure 502 {object} resdto.ActionResponse
// @Failure 503 {object} resdto.ActionResponse
// @Failure 504 {object} resdto.ActionResponse
// @Router /api/actions/{name} [post]
func (h *ActionHandler) Invoke(c *gin.Context) {
	var args reqdto.ActionArgs
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request body must be a JSON object", nil)
		return
	}

	res := h.executor.Execute(c.Request.Context(), args.ToRequest(c.Param("name")))
	c.JSON(httperr.StatusFor(res), resdto.FromResult(res))
}

// @Summary List actions
// @Description Describe every registered action with its parameters and result shape.
// @Tags actions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ActionListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/actions [get]
func (h *ActionHandler) List(c *gin.Context) {
	out, err := resdto.FromSpecs(h.executor.Specs())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}
