package action

type Status string

const (
	StatusSuccess  Status = "success"
	StatusConflict Status = "conflict"
	StatusFailure  Status = "failure"
)

// Result is the envelope every invocation returns. It is a plain value;
// the caller owns it.
type Result struct {
	Status  Status `json:"status"`
	Data    any    `json:"data,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Partial bool   `json:"partial"`
}

// Partialer is implemented by handler payloads that know whether a
// secondary effect was skipped.
type Partialer interface {
	Partial() bool
}

func Succeeded(data any, partial bool) Result {
	return Result{Status: StatusSuccess, Data: data, Partial: partial}
}

func Conflicted(reason string) Result {
	return Result{Status: StatusConflict, Reason: reason}
}

func Failed(kind Kind, message string, partial bool) Result {
	return Result{Status: StatusFailure, Kind: kind, Message: message, Partial: partial}
}

func (r Result) IsSuccess() bool  { return r.Status == StatusSuccess }
func (r Result) IsConflict() bool { return r.Status == StatusConflict }
func (r Result) IsFailure() bool  { return r.Status == StatusFailure }
