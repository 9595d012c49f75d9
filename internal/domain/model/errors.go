package model

import "errors"

// エンティティの不変条件違反
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// errがエンティティ検証エラーかどうか
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
