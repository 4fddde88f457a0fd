//go:build unit

package readstore

import (
	"context"
	"testing"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/tests/common/builder"
	readstoremock "parking-monitor/tests/mock/readstore"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLatestPerSpace(t *testing.T) {
	booked := builder.NewParkingBuilder().BuildInfra(3)
	booked.MsgID = pgtype.Text{String: "msg-3", Valid: true}
	free := builder.NewParkingBuilder().With(func(b *builder.ParkingBuilder) {
		b.ParkingID = "B4"
		b.Status = parking.StatusFree
		b.Source = parking.SourceSensor
	}).BuildInfra(4)

	tests := []struct {
		name      string
		rows      []dbquery.ParkingStatus
		mockError error
		wantLen   int
		wantError bool
	}{
		{name: "success - booked and free spaces", rows: []dbquery.ParkingStatus{booked, free}, wantLen: 2},
		{name: "success - no rows", rows: nil, wantLen: 0},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockParkingViewQueries(ctrl)
			q.EXPECT().GetLatestParkingStatuses(gomock.Any(), gomock.Any()).Return(tt.rows, tt.mockError)

			views, err := NewParkingReadStore(q, nil).LatestPerSpace(context.Background())

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Len(t, views, tt.wantLen)
		})
	}

	t.Run("maps nullable columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockParkingViewQueries(ctrl)
		q.EXPECT().GetLatestParkingStatuses(gomock.Any(), gomock.Any()).Return([]dbquery.ParkingStatus{booked, free}, nil)

		views, err := NewParkingReadStore(q, nil).LatestPerSpace(context.Background())
		require.NoError(t, err)

		got := views[0]
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "A1", got.ParkingID)
		assert.Equal(t, "Occupied", got.Status)
		assert.Equal(t, "booking", got.Source)
		require.NotNil(t, got.Name)
		assert.Equal(t, "Somchai", *got.Name)
		require.NotNil(t, got.MsgID)
		assert.Equal(t, "msg-3", *got.MsgID)
		require.NotNil(t, got.BookedMinutes)
		assert.Equal(t, int32(60), *got.BookedMinutes)

		assert.Nil(t, views[1].Name)
		assert.Nil(t, views[1].CarNo)
		assert.Nil(t, views[1].MsgID)
		assert.Nil(t, views[1].BookedMinutes)
	})
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockParkingViewQueries(ctrl)
	first := builder.NewParkingBuilder().With(func(b *builder.ParkingBuilder) {
		b.Status = parking.StatusFree
		b.Source = parking.SourceSensor
	}).BuildInfra(1)
	second := builder.NewParkingBuilder().BuildInfra(2)
	q.EXPECT().GetParkingStatusHistory(gomock.Any(), gomock.Any(), "A1").Return([]dbquery.ParkingStatus{first, second}, nil)
	q.EXPECT().GetParkingStatusHistory(gomock.Any(), gomock.Any(), "C2").Return(nil, assert.AnError)

	store := NewParkingReadStore(q, nil)

	views, err := store.History(context.Background(), "A1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, int64(2), views[1].ID)

	_, err = store.History(context.Background(), "C2")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestHeldSpaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockParkingViewQueries(ctrl)
	q.EXPECT().GetHeldParkingIDs(gomock.Any(), gomock.Any(), dbquery.GetHeldParkingIDsParams{
		Status: "Occupied",
		Source: "booking",
	}).Return([]string{"A1", "D3"}, nil)

	ids, err := NewParkingReadStore(q, nil).HeldSpaces(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "D3"}, ids)
}
