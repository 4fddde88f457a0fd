//go:build unit

package readstore

import (
	"context"
	"testing"

	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/tests/common/builder"
	readstoremock "parking-monitor/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListByParkingID(t *testing.T) {
	id := uuid.New()
	row := builder.NewPaymentBuilder().BuildInfra(id)

	t.Run("success - converts minor units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPaymentViewQueries(ctrl)
		q.EXPECT().ListPaymentsByParkingID(gomock.Any(), gomock.Any(), "A1").Return([]dbquery.Payment{row}, nil)

		views, err := NewPaymentReadStore(q, nil).ListByParkingID(context.Background(), "A1")

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, builder.NewPaymentBuilder().BuildView(id), views[0])
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPaymentViewQueries(ctrl)
		q.EXPECT().ListPaymentsByParkingID(gomock.Any(), gomock.Any(), "A1").Return(nil, assert.AnError)

		views, err := NewPaymentReadStore(q, nil).ListByParkingID(context.Background(), "A1")

		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
