package errors

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound  = errors.New("config not found")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrInvalidRule     = errors.New("invalid exclusion rule")
	ErrSinkClosed      = errors.New("sink closed")
	ErrNotFound        = errors.New("entity not found")
	ErrNotImplemented  = errors.New("not implemented")
)

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewRuleError(source string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidRule, source, err)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidFilePath, path, reason)
}

func NewNotFoundError(entityType string, id string) error {
	return fmt.Errorf("%w: %s id=%s", ErrNotFound, entityType, id)
}
