package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ecodeclub/tastebook/pkg/client/httpx"
)

// Reason 服务端拒绝的原因
type Reason uint8

const (
	ReasonUnknown Reason = iota
	ReasonDuplicate
	ReasonRateLimited
	ReasonInvalid
)

func (r Reason) String() string {
	switch r {
	case ReasonDuplicate:
		return "duplicate"
	case ReasonRateLimited:
		return "rate_limited"
	case ReasonInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Outcome 发表类操作的结果。被拒绝是正常的业务结果，不是 error
type Outcome struct {
	Accepted bool
	Reason   Reason
	ID       int64
	Msg      string
}

func Accepted(id int64) Outcome {
	return Outcome{Accepted: true, ID: id}
}

func Rejected(reason Reason, msg string) Outcome {
	return Outcome{Reason: reason, Msg: msg}
}

// 平台的业务错误码
const (
	codeCommentInvalid     = 513002
	codeCommentDuplicate   = 513003
	codeCommentTooFrequent = 513004
	codeReviewInvalid      = 515002
)

var acceptedStatus = map[string]struct{}{
	"approved": {},
	"success":  {},
	"created":  {},
	"ok":       {},
}

// DecodeStatus 服务端的 status 字段可能是数字也可能是字符串。
// 2xx 以及 approved / success / created / ok 都认为成功
func DecodeStatus(raw json.RawMessage) Outcome {
	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return Rejected(ReasonUnknown, "")
	}
	switch v := val.(type) {
	case float64:
		if v >= 200 && v < 300 {
			return Outcome{Accepted: true}
		}
		return Rejected(reasonFromHTTP(int(v)), "")
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if _, ok := acceptedStatus[s]; ok {
			return Outcome{Accepted: true}
		}
		return Rejected(reasonFromText(s), v)
	default:
		return Rejected(ReasonUnknown, "")
	}
}

// OutcomeFromError 把可以识别的业务错误转换成 Outcome。
// 第二个返回值为 false 说明 err 不是业务拒绝
func OutcomeFromError(err error) (Outcome, bool) {
	var apiErr *httpx.APIError
	if !errors.As(err, &apiErr) {
		return Outcome{}, false
	}
	switch apiErr.Code {
	case codeCommentDuplicate:
		return Rejected(ReasonDuplicate, apiErr.Msg), true
	case codeCommentTooFrequent:
		return Rejected(ReasonRateLimited, apiErr.Msg), true
	case codeCommentInvalid, codeReviewInvalid:
		return Rejected(ReasonInvalid, apiErr.Msg), true
	}
	switch apiErr.Status {
	case http.StatusConflict, http.StatusTooManyRequests, http.StatusBadRequest, http.StatusUnprocessableEntity:
		return Rejected(reasonFromHTTP(apiErr.Status), apiErr.Msg), true
	}
	return Outcome{}, false
}

func reasonFromHTTP(status int) Reason {
	switch status {
	case http.StatusConflict:
		return ReasonDuplicate
	case http.StatusTooManyRequests:
		return ReasonRateLimited
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ReasonInvalid
	default:
		return ReasonUnknown
	}
}

func reasonFromText(s string) Reason {
	switch {
	case strings.Contains(s, "duplicate"):
		return ReasonDuplicate
	case strings.Contains(s, "rate"), strings.Contains(s, "frequent"):
		return ReasonRateLimited
	case strings.Contains(s, "invalid"), strings.Contains(s, "reject"):
		return ReasonInvalid
	default:
		return ReasonUnknown
	}
}
