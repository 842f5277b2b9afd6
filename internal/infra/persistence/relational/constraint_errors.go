package relational

import (
	"strings"

	domainerrors "deliwer/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognises translated GORM errors first and
// falls back to driver messages for PostgreSQL (23505) and SQLite.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "23505")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError maps constraint failures to domain errors. duplicate is
// returned for unique violations.
func translateWriteError(err error, duplicate error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return duplicate
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
