//go:build unit

package repository

import (
	"context"
	"testing"

	"glamping-api/internal/infra"
	sqlc "glamping-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLocationWriteQueries struct {
	mock.Mock
}

func (m *MockLocationWriteQueries) CreateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLocationParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockLocationWriteQueries) GetLocationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Locations), args.Error(1)
}

func (m *MockLocationWriteQueries) UpdateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLocationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationWriteQueries) DeleteLocation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationWriteQueries) CountPackagesByLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, locationID)
	return args.Get(0).(int64), args.Error(1)
}

func TestDeleteLocation(t *testing.T) {
	testLocationID := uuid.New()

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:     "success",
			affected: 1,
		},
		{
			name:     "no rows affected",
			affected: 0,
			wantKind: infra.KindNotFound,
		},
		{
			name:      "packages still reference location",
			mockError: &pgconn.PgError{Code: "23503"},
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockLocationWriteQueries)
			mockQueries.On("DeleteLocation", mock.Anything, mock.Anything, testLocationID).Return(tt.affected, tt.mockError)

			repo := NewLocationRepository(mockQueries, nil)

			err := repo.Delete(context.Background(), testLocationID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCountLocationPackages(t *testing.T) {
	testLocationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockLocationWriteQueries)
		mockQueries.On("CountPackagesByLocation", mock.Anything, mock.Anything, testLocationID).Return(int64(2), nil)

		n, err := NewLocationRepository(mockQueries, nil).CountPackages(context.Background(), testLocationID)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockLocationWriteQueries)
		mockQueries.On("CountPackagesByLocation", mock.Anything, mock.Anything, testLocationID).Return(int64(0), assert.AnError)

		_, err := NewLocationRepository(mockQueries, nil).CountPackages(context.Background(), testLocationID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
