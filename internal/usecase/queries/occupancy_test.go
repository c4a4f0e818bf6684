//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/queries"
	"bookcase-rental/tests/common/builder"
	queriesmock "bookcase-rental/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBDown = errors.New("database down")

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

// =============================================================================
// IsOccupied / GetActiveOccupancy Tests
// =============================================================================

func TestOccupancyQueries_IsOccupied(t *testing.T) {
	ctx := context.Background()
	bookCaseID := uuid.New()
	suspended := builder.NewOccupancyBuilder().AsSuspended(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)).BuildReconstructed()

	testCases := []struct {
		name      string
		setupMock func(*queriesmock.MockOccupancyReadStore)
		want      bool
		wantErr   bool
	}{
		{
			name: "success: suspended occupancy still counts",
			setupMock: func(m *queriesmock.MockOccupancyReadStore) {
				m.EXPECT().FindActiveByBookCase(ctx, bookCaseID).Return(suspended, nil)
			},
			want: true,
		},
		{
			name: "success: no active record",
			setupMock: func(m *queriesmock.MockOccupancyReadStore) {
				m.EXPECT().FindActiveByBookCase(ctx, bookCaseID).Return(nil, notFound())
			},
			want: false,
		},
		{
			name: "error: store failure",
			setupMock: func(m *queriesmock.MockOccupancyReadStore) {
				m.EXPECT().FindActiveByBookCase(ctx, bookCaseID).Return(nil, errDBDown)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			occStore := queriesmock.NewMockOccupancyReadStore(ctrl)
			obStore := queriesmock.NewMockObligationReadStore(ctrl)
			tc.setupMock(occStore)

			got, err := queries.NewOccupancyQueries(occStore, obStore).IsOccupied(ctx, bookCaseID)
			if tc.wantErr {
				require.ErrorIs(t, err, errDBDown)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOccupancyQueries_GetActiveOccupancy(t *testing.T) {
	ctx := context.Background()

	t.Run("success: view mirrors the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		occStore := queriesmock.NewMockOccupancyReadStore(ctrl)

		b := builder.NewOccupancyBuilder()
		rec := b.BuildReconstructed()
		occStore.EXPECT().FindActiveByBookCase(ctx, rec.BookCaseID()).Return(rec, nil)

		got, err := queries.NewOccupancyQueries(occStore, queriesmock.NewMockObligationReadStore(ctrl)).GetActiveOccupancy(ctx, rec.BookCaseID())
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), got); diff != "" {
			t.Errorf("OccupancyView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: not found is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		occStore := queriesmock.NewMockOccupancyReadStore(ctrl)
		bookCaseID := uuid.New()

		occStore.EXPECT().FindActiveByBookCase(ctx, bookCaseID).Return(nil, notFound())

		_, err := queries.NewOccupancyQueries(occStore, queriesmock.NewMockObligationReadStore(ctrl)).GetActiveOccupancy(ctx, bookCaseID)
		assert.True(t, errs.Is(err, errs.ErrOccupancyNotFound), "got %v", err)
	})
}

// =============================================================================
// ListObligations Tests
// =============================================================================

func TestOccupancyQueries_ListObligations(t *testing.T) {
	ctx := context.Background()
	rec := builder.NewOccupancyBuilder().BuildReconstructed()
	paidAt := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)

	t.Run("success: obligations in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		occStore := queriesmock.NewMockOccupancyReadStore(ctrl)
		obStore := queriesmock.NewMockObligationReadStore(ctrl)

		june := builder.NewObligationBuilder().WithOccupancyID(rec.ID()).AsPaid(paidAt)
		july := builder.NewObligationBuilder().WithOccupancyID(rec.ID()).WithMonth(2024, time.July).WithDeducted(5000)

		occStore.EXPECT().FindByID(ctx, rec.ID()).Return(rec, nil)
		obStore.EXPECT().ListByOccupancy(ctx, rec.ID()).Return([]*settlement.Obligation{june.BuildDomain(), july.BuildDomain()}, nil)

		got, err := queries.NewOccupancyQueries(occStore, obStore).ListObligations(ctx, rec.ID())
		require.NoError(t, err)

		want := []*queries.ObligationView{june.BuildView(), july.BuildView()}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ObligationView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: unknown occupancy skips the obligation lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		occStore := queriesmock.NewMockOccupancyReadStore(ctrl)
		obStore := queriesmock.NewMockObligationReadStore(ctrl)

		occStore.EXPECT().FindByID(ctx, rec.ID()).Return(nil, notFound())

		_, err := queries.NewOccupancyQueries(occStore, obStore).ListObligations(ctx, rec.ID())
		assert.True(t, errs.Is(err, errs.ErrOccupancyNotFound), "got %v", err)
	})
}
