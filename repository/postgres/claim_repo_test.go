package postgres

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/aseleznev/identity-store/model"
)

func TestClaimRepo_Insert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClaimRepo(db)
	ctx := context.Background()
	c := model.UserClaim{Type: "dept", Value: "eng"}

	mock.ExpectExec(`INSERT INTO user_claims \(user_id, claim_type, claim_value\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs("u1", c.Type, c.Value).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Insert(ctx, "u1", c))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepo_Delete_RemovesAllMatches(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClaimRepo(db)
	ctx := context.Background()
	c := model.UserClaim{Type: "dept", Value: "eng"}

	const re = `DELETE FROM user_claims WHERE user_id=\$1 AND claim_type=\$2 AND claim_value=\$3`

	// multi-row delete in one statement
	mock.ExpectExec(re).
		WithArgs("u1", c.Type, c.Value).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	require.NoError(t, r.Delete(ctx, "u1", c))

	// absent rows: still no error
	mock.ExpectExec(re).
		WithArgs("u1", c.Type, c.Value).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, r.Delete(ctx, "u1", c))
}

func TestClaimRepo_ListByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClaimRepo(db)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"claim_type", "claim_value"}).
		AddRow("dept", "eng").
		AddRow("office", "hq")
	mock.ExpectQuery(`SELECT claim_type, claim_value FROM user_claims WHERE user_id=\$1 ORDER BY id`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []model.UserClaim{
		{Type: "dept", Value: "eng"},
		{Type: "office", Value: "hq"},
	}, got)
}
