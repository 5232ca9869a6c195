package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("slot_already_booked")

	require.True(t, IsBusiness(err, "slot_already_booked"))
	require.False(t, IsBusiness(err, "shop_not_found"))
	require.Equal(t, "slot_already_booked", BusinessCode(err))

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create booking: %w", err)
		require.True(t, IsBusiness(wrapped, "slot_already_booked"))
		require.Equal(t, "slot_already_booked", BusinessCode(wrapped))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		plain := errors.New("boom")
		require.False(t, IsBusiness(plain, "slot_already_booked"))
		require.Equal(t, "", BusinessCode(plain))
		require.Equal(t, "", BusinessCode(nil))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	require.True(t, IsUniqueViolation(unique))
	require.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))

	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("boom")))
	require.False(t, IsUniqueViolation(nil))
}

func TestIsExclusionConflict(t *testing.T) {
	require.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23P01"}))
	require.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsExclusionConflict(nil))
}
