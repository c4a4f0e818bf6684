//go:build unit

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/tests/common/builder"
	repositorymock "bookcase-rental/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestObligationRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockObligationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewObligationRepository(mockQueries)
	ob := builder.NewObligationBuilder().WithMonth(2024, time.March).WithAmount(30000).BuildDomain()

	mockQueries.EXPECT().CreateRentalObligation(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRentalObligationParams) (int64, error) {
			assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), arg.TargetMonth.Time)
			assert.Equal(t, int64(30000), arg.Amount)
			assert.Equal(t, int64(30000), arg.RemainingAmount)
			assert.Equal(t, "UNPAID", arg.Status)
			return 1, nil
		})

	rows, err := repo.Create(ctx, mockDB, ob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestObligationRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           func() sqlc.RentalObligations
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectIs      error
	}{
		{
			name: "success: row converted to domain",
			row: func() sqlc.RentalObligations {
				return builder.NewObligationBuilder().WithAmount(30000).WithDeducted(10000).BuildInfra()
			},
		},
		{
			name:          "error: obligation not found",
			row:           func() sqlc.RentalObligations { return sqlc.RentalObligations{} },
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error occurs",
			row:           func() sqlc.RentalObligations { return sqlc.RentalObligations{} },
			queryErr:      errors.New("lock timeout"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored status is unknown",
			row: func() sqlc.RentalObligations {
				row := builder.NewObligationBuilder().BuildInfra()
				row.Status = "PARTIAL"
				return row
			},
			expectedError: true,
			expectIs:      errs.ErrPersistenceIntegrity,
		},
		{
			name: "error: stored amount is negative",
			row: func() sqlc.RentalObligations {
				row := builder.NewObligationBuilder().BuildInfra()
				row.RemainingAmount = -1
				return row
			},
			expectedError: true,
			expectIs:      errs.ErrPersistenceIntegrity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockObligationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewObligationRepository(mockQueries)
			row := tc.row()

			mockQueries.EXPECT().GetRentalObligationForUpdate(ctx, mockDB, row.ID).Return(row, tc.queryErr)

			ob, err := repo.LockByID(ctx, mockDB, row.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, ob)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				}
				if tc.expectIs != nil {
					assert.True(t, errs.Is(err, tc.expectIs), "got %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, ob.ID())
			assert.Equal(t, int64(10000), ob.Deducted().Amount())
			assert.Equal(t, int64(20000), ob.Remaining().Amount())
			assert.Equal(t, "2024-06", ob.TargetMonth().String())
		})
	}
}

func TestObligationRepository_SaveDeduction(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)

	t.Run("success: writes paid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := repositorymock.NewMockObligationWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		ob := builder.NewObligationBuilder().WithAmount(30000).BuildDomain()
		require.NoError(t, ob.Deduct(money.MustNew(30000), at))

		mockQueries.EXPECT().UpdateRentalObligationDeduction(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateRentalObligationDeductionParams) (int64, error) {
				assert.Equal(t, settlement.StatusPaid.String(), arg.Status)
				assert.Equal(t, int64(0), arg.RemainingAmount)
				assert.True(t, arg.PaidAt.Valid)
				return 1, nil
			})

		require.NoError(t, repository.NewObligationRepository(mockQueries).SaveDeduction(ctx, mockDB, ob))
	})

	for _, rows := range []int64{0, 2} {
		t.Run(fmt.Sprintf("error: update affecting %d rows is an integrity failure", rows), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockQueries := repositorymock.NewMockObligationWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().UpdateRentalObligationDeduction(ctx, mockDB, gomock.Any()).Return(rows, nil)

			err := repository.NewObligationRepository(mockQueries).SaveDeduction(ctx, mockDB, builder.NewObligationBuilder().BuildDomain())
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrPersistenceIntegrity), "got %v", err)
			assert.False(t, infra.IsKind(err, infra.KindNotFound))
		})
	}
}
