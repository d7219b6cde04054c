package db

import "fmt"

type ZamboniDatabaseErrorType int

const (
	ENTITY_NOT_FOUND ZamboniDatabaseErrorType = 1
	ENTITY_ALREADY_EXISTS ZamboniDatabaseErrorType = 2
	DATABASE_NOT_SUPPORTED ZamboniDatabaseErrorType = 3
)

func (zdet ZamboniDatabaseErrorType) String() string {
	switch zdet {
	case ENTITY_NOT_FOUND: return "ENTITY_NOT_FOUND"
	case ENTITY_ALREADY_EXISTS: return "ENTITY_ALREADY_EXISTS"
	case DATABASE_NOT_SUPPORTED: return "DATABASE_NOT_SUPPORTED"
	}
	return "UNKNOWN_ERROR"
}

type ZamboniDatabaseError struct {
	ErrorType ZamboniDatabaseErrorType
	ErrorMsg string
}

func IsZamboniDatabaseError(e error) bool {
	_, ok := e.(*ZamboniDatabaseError)
	return ok
}

func IsEntityNotFound(e error) bool {
	zde, ok := e.(*ZamboniDatabaseError)
	return ok && zde.ErrorType == ENTITY_NOT_FOUND
}

func (zde ZamboniDatabaseError) Error() string {
	return fmt.Sprintf("%s: %s", zde.ErrorType, zde.ErrorMsg)
}

func NewZamboniDatabaseError(t ZamboniDatabaseErrorType, msg string) *ZamboniDatabaseError {
	return &ZamboniDatabaseError{
		ErrorType: t,
		ErrorMsg: msg,
	}
}

var ErrEntityNotFound = NewZamboniDatabaseError(ENTITY_NOT_FOUND, "")
var ErrDatabaseNotSupported = NewZamboniDatabaseError(DATABASE_NOT_SUPPORTED, "database type not supported")
