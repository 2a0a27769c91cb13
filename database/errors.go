package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rpupo63/travel-blog-backend/errs"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify wraps driver errors with the errs sentinels so callers can tell a
// missing row or a broken constraint from a generic failure.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if kind := kindOf(err); kind != nil {
		return fmt.Errorf("%s: %w: %w", op, kind, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.ErrForeignKeyConstraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errs.ErrAlreadyExists
		case pgForeignKeyViolation:
			return errs.ErrForeignKeyConstraint
		}
	}

	// Drivers that do not translate their errors still say what happened.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return errs.ErrAlreadyExists
	case strings.Contains(msg, "foreign key constraint"):
		return errs.ErrForeignKeyConstraint
	}
	return nil
}
