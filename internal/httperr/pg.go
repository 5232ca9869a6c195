package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a postgres unique-constraint
// failure (SQLSTATE 23505). The unique indexes on shops.barber_id,
// reviews.booking_id and the active-slot index surface here when two
// requests race past the application-level existence checks.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsExclusionConflict reports an exclusion-constraint failure (SQLSTATE 23P01).
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
