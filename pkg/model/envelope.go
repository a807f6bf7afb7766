package model

const (
	StatusSuccess = "success"
	StatusWarning = "warning"
)

// Envelope is the uniform wrapper of every non-error response.
type Envelope struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	ResultCount *int   `json:"resultCount,omitempty"`
	Data        any    `json:"data,omitempty"`
	Success     *bool  `json:"success,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

func Warning(message string, data any) Envelope {
	return Envelope{Status: StatusWarning, Message: message, Data: data}
}

func (e Envelope) WithMessage(message string) Envelope {
	e.Message = message
	return e
}

func (e Envelope) WithCount(n int) Envelope {
	e.ResultCount = &n
	return e
}

func (e Envelope) WithSuccessFlag() Envelope {
	ok := true
	e.Success = &ok
	return e
}
