package domain

import "errors"

// 存储层统一返回的错误类型，调用方用 errors.Is 判断
var (
	ErrNotFound           = errors.New("record not found")
	ErrMalformedID        = errors.New("malformed id")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError 入参缺失等校验失败
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Field + " is required"
}

func Required(field string) error { return &ValidationError{Field: field} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
