package response

import (
	"commerce-actions/internal/action"
	"commerce-actions/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type ActionResponse struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Partial bool   `json:"partial"`
}

func FromResult(res action.Result) ActionResponse {
	return ActionResponse{
		Status:  string(res.Status),
		Data:    res.Data,
		Reason:  res.Reason,
		Kind:    string(res.Kind),
		Message: res.Message,
		Partial: res.Partial,
	}
}

type ParamResponse struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
	Description string   `json:"description,omitempty"`
}

type ResultShapeResponse struct {
	Description string `json:"description"`
	Example     any    `json:"example,omitempty"`
}

type ActionSpecResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Params      []ParamResponse     `json:"params"`
	Result      ResultShapeResponse `json:"result"`
}

type ActionListResponse struct {
	Actions []ActionSpecResponse `json:"actions"`
}

func FromSpecs(specs []action.Spec) (ActionListResponse, error) {
	out := ActionListResponse{Actions: make([]ActionSpecResponse, 0, len(specs))}
	if err := copier.Copy(&out.Actions, &specs); err != nil {
		return ActionListResponse{}, errs.Wrap(err, "map action specs")
	}
	for i := range out.Actions {
		if out.Actions[i].Params == nil {
			out.Actions[i].Params = []ParamResponse{}
		}
	}
	return out, nil
}
