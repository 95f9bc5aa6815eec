//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"commerce-actions/internal/action"
	"commerce-actions/internal/handler/api"
	resdto "commerce-actions/internal/handler/dto/response"
	"commerce-actions/tests/common/httptest"
	actionmock "commerce-actions/tests/mock/action"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ActionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockExecutor *actionmock.MockExecutor
	handler      *api.ActionHandler
}

func (s *ActionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockExecutor = actionmock.NewMockExecutor(s.mockCtrl)
	s.handler = api.NewActionHandler(s.mockExecutor)

	s.router.POST("/api/actions/:name", s.handler.Invoke)
	s.router.GET("/api/actions", s.handler.List)
}

func (s *ActionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestActionHandlerSuite(t *testing.T) {
	suite.Run(t, new(ActionHandlerTestSuite))
}

// ================================================================================
// TestInvoke
// ================================================================================

func (s *ActionHandlerTestSuite) TestInvoke() {
	url := "/api/actions/check_availability"
	body := map[string]any{"product_id": "soil-123", "store_id": "main"}

	s.Run("success: passes name and args to the executor", func() {
		s.mockExecutor.EXPECT().
			Execute(gomock.Any(), action.Request{Name: "check_availability", Args: action.Args{"product_id": "soil-123", "store_id": "main"}}).
			Return(action.Succeeded(map[string]any{"available": true}, false))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var got resdto.ActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("success", got.Status)
		s.Equal(map[string]any{"available": true}, got.Data)
		s.False(got.Partial)
	})

	s.Run("success: empty body invokes with no args", func() {
		s.mockExecutor.EXPECT().
			Execute(gomock.Any(), action.Request{Name: "list_available_times", Args: action.Args{}}).
			Return(action.Failed(action.KindInvalidArgument, "date: is required", false))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/actions/list_available_times", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: conflict is returned with 200", func() {
		s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(action.Conflicted("slot already has a call"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var got resdto.ActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("conflict", got.Status)
		s.Equal("slot already has a call", got.Reason)
	})

	s.Run("success: partial flag is preserved", func() {
		s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(action.Succeeded(map[string]any{"event_id": "e1"}, true))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var got resdto.ActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Partial)
	})

	failures := []struct {
		name string
		kind action.Kind
		code int
	}{
		{name: "invalid argument", kind: action.KindInvalidArgument, code: http.StatusBadRequest},
		{name: "unknown action", kind: action.KindUnknownAction, code: http.StatusNotFound},
		{name: "calendar auth", kind: action.KindAuthError, code: http.StatusBadGateway},
		{name: "calendar unavailable", kind: action.KindCalendarUnavailable, code: http.StatusServiceUnavailable},
		{name: "calendar write", kind: action.KindCalendarWriteError, code: http.StatusBadGateway},
		{name: "crm write", kind: action.KindCrmWriteError, code: http.StatusBadGateway},
		{name: "backend unavailable", kind: action.KindBackendUnavailable, code: http.StatusServiceUnavailable},
		{name: "timeout", kind: action.KindTimeout, code: http.StatusGatewayTimeout},
		{name: "internal", kind: action.KindInternal, code: http.StatusInternalServerError},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).
				Return(action.Failed(tc.kind, "boom", false))

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

			s.Equal(tc.code, rec.Code)
			s.Contains(rec.Body.String(), string(tc.kind))
		})
	}

	s.Run("error: body that is not a JSON object", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []int{1, 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "JSON object")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ActionHandlerTestSuite) TestList() {
	s.Run("success: lists specs in registration order", func() {
		s.mockExecutor.EXPECT().Specs().Return([]action.Spec{
			{
				Name: "check_availability",
				Params: []action.Param{
					{Name: "product_id", Type: action.TypeString, Required: true},
					{Name: "store_id", Type: action.TypeString, Required: true},
				},
				Result: action.ResultShape{Description: "Stock at the store."},
			},
			{Name: "get_recommendations"},
		})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/actions", nil, "")

		var got resdto.ActionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Actions, 2)
		s.Equal("check_availability", got.Actions[0].Name)
		s.Equal("string", got.Actions[0].Params[0].Type)
		s.True(got.Actions[0].Params[1].Required)
		s.Equal("Stock at the store.", got.Actions[0].Result.Description)
		s.Empty(got.Actions[1].Params)
	})
}
