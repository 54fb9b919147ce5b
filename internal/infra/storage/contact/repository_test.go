package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/ptr"
)

const insertMessageSQL = "INSERT INTO contact_messages (name,email,phone,message) VALUES ($1,$2,$3,$4) RETURNING id, created_at"

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	createdAt := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		phone *string
		want  interface{}
	}{
		{name: "with phone", phone: ptr.Ptr("+56 9 1234 5678"), want: "+56 9 1234 5678"},
		{name: "without phone", phone: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMock(t)

			mock.ExpectQuery(insertMessageSQL).
				WithArgs("Gabriela", "gabi@example.cl", tt.want, "¿Tienen sala disponible el sábado?").
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), createdAt))

			msg, err := repo.Create(context.Background(), &domain.ContactMessage{
				Name:    "Gabriela",
				Email:   "gabi@example.cl",
				Phone:   tt.phone,
				Message: "¿Tienen sala disponible el sábado?",
			})
			require.NoError(t, err)
			assert.Equal(t, int64(3), msg.ID)
			assert.Equal(t, createdAt, msg.CreatedAt)
		})
	}
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(insertMessageSQL).WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), &domain.ContactMessage{Name: "Gabriela", Email: "gabi@example.cl", Message: "Hola"})
	assert.ErrorIs(t, err, ErrExecQuery)
}
