package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"recipe-be/internal/common"
)

const (
	// uniqueViolation is the Postgres SQLSTATE for unique constraint failures.
	uniqueViolation = "23505"
	// dataException is the SQLSTATE class for out-of-range and overlong values.
	dataException = "22"
)

// mapError translates driver errors into the package sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == uniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pqErr.Constraint)
		case pqErr.Code.Class() == dataException:
			return fmt.Errorf("%w: %s", common.ErrorInvalidValue, pqErr.Message)
		}
	}
	return fmt.Errorf("db error: %w", err)
}
