package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/aseleznev/identity-store/errs"
)

func TestRoleRepo_Insert_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()

	const re = `INSERT INTO user_roles \(user_id, role_name\) VALUES \(\$1, \$2\)`

	mock.ExpectExec(re).
		WithArgs("u1", "Admin").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Insert(ctx, "u1", "Admin"))

	// loses the race on the (user_id, lower(role_name)) index
	mock.ExpectExec(re).
		WithArgs("u1", "ADMIN").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Insert(ctx, "u1", "ADMIN"), errs.ErrAlreadyExists)
}

func TestRoleRepo_Delete_CaseInsensitive(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()

	const re = `DELETE FROM user_roles WHERE user_id=\$1 AND lower\(role_name\)=lower\(\$2\)`

	mock.ExpectExec(re).
		WithArgs("u1", "admin").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, "u1", "admin"))

	mock.ExpectExec(re).
		WithArgs("u1", "auditor").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, r.Delete(ctx, "u1", "auditor"))
}

func TestRoleRepo_ListByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"role_name"}).
		AddRow("Admin").
		AddRow("Auditor")
	mock.ExpectQuery(`SELECT role_name FROM user_roles WHERE user_id=\$1 ORDER BY id`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"Admin", "Auditor"}, got)
}
