package readstore

import (
	"context"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/pkg/pgconv"
	"parking-monitor/internal/usecase/queries"
)

type ParkingViewQueries interface {
	GetLatestParkingStatuses(ctx context.Context, db dbquery.DBTX) ([]dbquery.ParkingStatus, error)
	GetParkingStatusHistory(ctx context.Context, db dbquery.DBTX, parkingID string) ([]dbquery.ParkingStatus, error)
	GetHeldParkingIDs(ctx context.Context, db dbquery.DBTX, arg dbquery.GetHeldParkingIDsParams) ([]string, error)
}

type ParkingReadStore struct {
	queries ParkingViewQueries
	db      dbquery.DBTX
}

func NewParkingReadStore(queries ParkingViewQueries, db dbquery.DBTX) *ParkingReadStore {
	return &ParkingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ParkingReadStore) LatestPerSpace(ctx context.Context) ([]*queries.ParkingStatusView, error) {
	rows, err := r.queries.GetLatestParkingStatuses(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get latest parking statuses", err)
	}
	return mapParkingRows(rows), nil
}

func (r *ParkingReadStore) History(ctx context.Context, parkingID string) ([]*queries.ParkingStatusView, error) {
	rows, err := r.queries.GetParkingStatusHistory(ctx, r.db, parkingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get parking status history", err)
	}
	return mapParkingRows(rows), nil
}

func (r *ParkingReadStore) HeldSpaces(ctx context.Context) ([]string, error) {
	ids, err := r.queries.GetHeldParkingIDs(ctx, r.db, dbquery.GetHeldParkingIDsParams{
		Status: parking.StatusOccupied.String(),
		Source: parking.SourceBooking.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booked parking spaces", err)
	}
	return ids, nil
}

func mapParkingRows(rows []dbquery.ParkingStatus) []*queries.ParkingStatusView {
	views := make([]*queries.ParkingStatusView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ParkingStatusView{
			ID:            row.ID,
			ParkingID:     row.ParkingID,
			Status:        row.Status,
			Source:        row.Source,
			Timestamp:     pgconv.TimeFromPgtype(row.Timestamp),
			Name:          pgconv.StringPtrFromPgtype(row.Name),
			CarNo:         pgconv.StringPtrFromPgtype(row.CarNo),
			MsgID:         pgconv.StringPtrFromPgtype(row.MsgID),
			BookedMinutes: pgconv.Int32PtrFromPgtype(row.BookedMinutes),
		})
	}
	return views
}
