//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/readstore"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/tests/common/builder"
	readstoremock "bookcase-rental/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestOccupancyReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	suspendedAt := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)
	row := builder.NewOccupancyBuilder().AsSuspended(suspendedAt).BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockOccupancyReadQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: occupancy found",
			setupMock: func(mock *readstoremock.MockOccupancyReadQueries, id uuid.UUID) {
				mock.EXPECT().GetOccupancyByID(ctx, gomock.Any(), id).Return(row, nil)
			},
		},
		{
			name: "error: occupancy not found",
			setupMock: func(mock *readstoremock.MockOccupancyReadQueries, id uuid.UUID) {
				mock.EXPECT().GetOccupancyByID(ctx, gomock.Any(), id).Return(sqlc.Occupancies{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockOccupancyReadQueries, id uuid.UUID) {
				mock.EXPECT().GetOccupancyByID(ctx, gomock.Any(), id).Return(sqlc.Occupancies{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOccupancyReadQueries(ctrl)
			tc.setupMock(mockQueries, row.ID)
			store := readstore.NewOccupancyReadStore(mockQueries, nil)

			rec, err := store.FindByID(ctx, row.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, rec)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, rec.ID())
			assert.Equal(t, row.BookCaseID, rec.BookCaseID())
			assert.True(t, rec.IsActive())
			require.True(t, rec.IsSuspended())
			assert.Equal(t, suspendedAt, *rec.SuspendedAt())
		})
	}
}

// =============================================================================
// FindActiveByBookCase Tests
// =============================================================================

func TestOccupancyReadStore_FindActiveByBookCase(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockOccupancyReadQueries(ctrl)
	store := readstore.NewOccupancyReadStore(mockQueries, nil)
	bookCaseID := uuid.New()

	mockQueries.EXPECT().GetActiveOccupancyByBookCase(ctx, gomock.Any(), bookCaseID).Return(sqlc.Occupancies{}, pgx.ErrNoRows)

	_, err := store.FindActiveByBookCase(ctx, bookCaseID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// List Tests
// =============================================================================

func TestOccupancyReadStore_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success: keeps query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockOccupancyReadQueries(ctrl)

		first := builder.NewOccupancyBuilder().BuildInfra()
		second := builder.NewOccupancyBuilder().BuildInfra()
		mockQueries.EXPECT().ListActiveOccupancies(ctx, gomock.Any()).Return([]sqlc.Occupancies{first, second}, nil)

		recs, err := readstore.NewOccupancyReadStore(mockQueries, nil).ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, first.ID, recs[0].ID())
		assert.Equal(t, second.ID, recs[1].ID())
	})

	t.Run("success: no rows is an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockOccupancyReadQueries(ctrl)
		ownerID := uuid.New()

		mockQueries.EXPECT().ListActiveOccupanciesByOwner(ctx, gomock.Any(), ownerID).Return(nil, nil)

		recs, err := readstore.NewOccupancyReadStore(mockQueries, nil).ListActiveByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("error: count fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockOccupancyReadQueries(ctrl)
		ownerID := uuid.New()

		mockQueries.EXPECT().CountActiveOccupanciesByOwner(ctx, gomock.Any(), ownerID).Return(int64(0), errDBConnectionLost)

		_, err := readstore.NewOccupancyReadStore(mockQueries, nil).CountActiveByOwner(ctx, ownerID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
