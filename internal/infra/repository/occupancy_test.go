//go:build unit

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/pkg/pgconv"
	"bookcase-rental/tests/common/builder"
	repositorymock "bookcase-rental/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Occupancy Tests
// =============================================================================

func TestOccupancyRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOccupancyWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectIs      error
	}{
		{
			name: "success: occupancy created",
			setupMock: func(mock *repositorymock.MockOccupancyWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateOccupancy(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockOccupancyWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateOccupancy(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: active occupancy already exists for book case",
			setupMock: func(mock *repositorymock.MockOccupancyWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateOccupancy(ctx, tx, gomock.Any()).Return(int64(0), dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: insert affected no row",
			setupMock: func(mock *repositorymock.MockOccupancyWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateOccupancy(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectIs:      errs.ErrPersistenceIntegrity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOccupancyRepository(mockQueries)

			rec, err := builder.NewOccupancyBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, mockDB, rec)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				if tc.expectIs != nil {
					assert.True(t, errs.Is(actualError, tc.expectIs))
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestOccupancyRepository_CreateParams(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOccupancyRepository(mockQueries)

	b := builder.NewOccupancyBuilder()
	rec, err := b.BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().CreateOccupancy(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOccupancyParams) (int64, error) {
			assert.Equal(t, rec.ID(), arg.ID)
			assert.Equal(t, b.BookCaseIDs[0], arg.BookCaseID)
			assert.Equal(t, b.OwnerID, arg.BookOwnerID)
			assert.Equal(t, b.OccupiedAt, arg.OccupiedAt.Time)
			assert.Equal(t, b.ExpirationDate, arg.ExpirationDate.Time)
			return 1, nil
		})

	require.NoError(t, repo.Create(ctx, mockDB, rec))
}

// =============================================================================
// Lock / Save Tests
// =============================================================================

func TestOccupancyRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	suspendedAt := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row is reconstructed",
		},
		{
			name:          "error: occupancy does not exist",
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error occurs",
			queryErr:      errors.New("connection reset"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			b := builder.NewOccupancyBuilder().AsSuspended(suspendedAt)
			row := b.BuildInfra()
			if tc.queryErr != nil {
				row = sqlc.Occupancies{}
			}
			mockQueries.EXPECT().GetOccupancyForUpdate(ctx, mockDB, b.ID).Return(row, tc.queryErr)

			rec, err := repository.NewOccupancyRepository(mockQueries).LockByID(ctx, mockDB, b.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, rec)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, rec.ID())
			assert.True(t, rec.IsActive())
			assert.True(t, rec.IsSuspended())
		})
	}
}

func TestOccupancyRepository_Save(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: writes both state timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		rec := builder.NewOccupancyBuilder().BuildReconstructed()
		require.NoError(t, rec.Suspend(at))
		require.NoError(t, rec.Vacate(at.Add(time.Hour)))

		mockQueries.EXPECT().UpdateOccupancyState(ctx, mockDB, sqlc.UpdateOccupancyStateParams{
			ID:           rec.ID(),
			UnOccupiedAt: pgconv.TimeToPgtype(at.Add(time.Hour)),
			SuspendedAt:  pgconv.TimeToPgtype(at),
		}).Return(int64(1), nil)

		require.NoError(t, repository.NewOccupancyRepository(mockQueries).Save(ctx, mockDB, rec))
	})

	t.Run("success: untouched timestamps stay null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		rec := builder.NewOccupancyBuilder().BuildReconstructed()
		require.NoError(t, rec.Suspend(at))

		mockQueries.EXPECT().UpdateOccupancyState(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateOccupancyStateParams) (int64, error) {
				assert.False(t, arg.UnOccupiedAt.Valid)
				assert.True(t, arg.SuspendedAt.Valid)
				return 1, nil
			})

		require.NoError(t, repository.NewOccupancyRepository(mockQueries).Save(ctx, mockDB, rec))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().UpdateOccupancyState(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("connection reset"))

		err := repository.NewOccupancyRepository(mockQueries).Save(ctx, mockDB, builder.NewOccupancyBuilder().BuildReconstructed())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	for _, rows := range []int64{0, 2} {
		t.Run(fmt.Sprintf("error: update affecting %d rows is an integrity failure", rows), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockQueries := repositorymock.NewMockOccupancyWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().UpdateOccupancyState(ctx, mockDB, gomock.Any()).Return(rows, nil)

			err := repository.NewOccupancyRepository(mockQueries).Save(ctx, mockDB, builder.NewOccupancyBuilder().BuildReconstructed())
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrPersistenceIntegrity), "got %v", err)
		})
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func checkViolation() error {
	return &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}
}
