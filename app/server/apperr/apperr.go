package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindValidation
	KindConflict
	KindNotFound
	KindBadRequest
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// Status 冲突也返回 400 ，通过 code 字段与校验失败区分
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation, KindConflict, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string // 仅校验失败时使用
	Err     error               // 内部原因，不会返回给客户端
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthenticated() *Error {
	return New(KindUnauthenticated, "Unauthorized, token missing or invalid")
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func Internal(err error) *Error {
	return Wrap(KindInternal, http.StatusText(http.StatusInternalServerError), err)
}

// From 把任意错误归类，未知错误一律视为内部错误
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

func RateLimited() *Error {
	return New(KindRateLimited, "Too many requests, please try again later")
}

// Response 是返回给客户端的错误结构，不包含内部原因
type Response struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Error   string              `json:"error"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func (e *Error) Response() *Response {
	return &Response{
		Success: false,
		Code:    e.Kind.String(),
		Error:   e.Message,
		Fields:  e.Fields,
	}
}
