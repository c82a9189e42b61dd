package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope shared by both services. Success payloads
// use the documented per-endpoint shapes; failures always carry a reason.
type Response struct {
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	Error      string `json:"error,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// ParamErr reports client-correctable invalid input.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "invalid input"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// RateErr reports a rate-limited request with the seconds to wait.
func RateErr(retryAfterSec int) Response {
	res := Err(http.StatusTooManyRequests, "rate limit exceeded", nil)
	res.RetryAfter = retryAfterSec
	return res
}

// UpstreamErr reports that a dependency (vault or CMS) could not be reached.
func UpstreamErr(msg string, err error) Response {
	if msg == "" {
		msg = "upstream unavailable"
	}
	return Err(http.StatusServiceUnavailable, msg, err)
}

// ProviderErr reports a provider-side rejection. The message stays generic;
// detail belongs in the server log, not the response.
func ProviderErr(err error) Response {
	return Err(http.StatusInternalServerError, "generation provider error", err)
}

// StorageErr reports a local read/write failure.
func StorageErr(msg string, err error) Response {
	if msg == "" {
		msg = "storage error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}
