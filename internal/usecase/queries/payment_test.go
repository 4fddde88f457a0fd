//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/queries"
	"parking-monitor/tests/common/builder"
	queriesmock "parking-monitor/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentQueries_ListByParkingID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns payments for the space", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		rows := []*queries.PaymentView{builder.NewPaymentBuilder().BuildView(uuid.New())}
		store.EXPECT().ListByParkingID(gomock.Any(), "A1").Return(rows, nil)

		got, err := queries.NewPaymentQueries(store).ListByParkingID(ctx, "A1")

		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("success: no payments yields an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		store.EXPECT().ListByParkingID(gomock.Any(), "C3").Return(nil, nil)

		got, err := queries.NewPaymentQueries(store).ListByParkingID(ctx, "C3")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		store.EXPECT().ListByParkingID(gomock.Any(), "A1").Return(nil, errors.New("timeout"))

		_, err := queries.NewPaymentQueries(store).ListByParkingID(ctx, "A1")

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
