package errs

import "errors"

// Code 错误类别，调用方按类别编程，不解析文本
type Code string

const (
	CodeValidation       Code = "validation_error"
	CodeNotFound         Code = "not_found"
	CodeConflict         Code = "conflict"
	CodeUnauthenticated  Code = "unauthenticated"
	CodeInvalidOperation Code = "invalid_operation"
	CodeForbidden        Code = "forbidden"
	CodeInternal         Code = "internal_error"
)

type Error struct {
	Code  Code
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}

// Is 按 Code 匹配，errors.Is(err, ErrNotFound) 对任意 not_found 错误成立
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrValidation       = &Error{Code: CodeValidation, Msg: "validation failed"}
	ErrNotFound         = &Error{Code: CodeNotFound, Msg: "not found"}
	ErrConflict         = &Error{Code: CodeConflict, Msg: "conflict"}
	ErrUnauthenticated  = &Error{Code: CodeUnauthenticated, Msg: "unauthenticated"}
	ErrInvalidOperation = &Error{Code: CodeInvalidOperation, Msg: "invalid operation"}
	ErrForbidden        = &Error{Code: CodeForbidden, Msg: "forbidden"}
	ErrInternal         = &Error{Code: CodeInternal, Msg: "internal error"}
)

func Validation(field, msg string) error {
	return &Error{Code: CodeValidation, Field: field, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Code: CodeNotFound, Msg: msg}
}

func Conflict(msg string) error {
	return &Error{Code: CodeConflict, Msg: msg}
}

func Unauthenticated(msg string) error {
	return &Error{Code: CodeUnauthenticated, Msg: msg}
}

func InvalidOperation(msg string) error {
	return &Error{Code: CodeInvalidOperation, Msg: msg}
}

func Forbidden(msg string) error {
	return &Error{Code: CodeForbidden, Msg: msg}
}

func Internal(msg string) error {
	return &Error{Code: CodeInternal, Msg: msg}
}

// CodeOf 非 *Error 的错误一律视为 internal_error
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
