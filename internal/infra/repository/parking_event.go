package repository

import (
	"context"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/pkg/pgconv"
)

type ParkingEventWriteQueries interface {
	LockParkingSpace(ctx context.Context, db dbquery.DBTX, parkingID string) error
	GetLatestParkingStatusByID(ctx context.Context, db dbquery.DBTX, parkingID string) (dbquery.ParkingStatus, error)
	InsertParkingStatus(ctx context.Context, db dbquery.DBTX, arg dbquery.InsertParkingStatusParams) (int64, error)
}

type ParkingEventRepository struct {
	queries ParkingEventWriteQueries
	db      dbquery.DBTX
}

func NewParkingEventRepository(queries ParkingEventWriteQueries, db dbquery.DBTX) *ParkingEventRepository {
	return &ParkingEventRepository{
		queries: queries,
		db:      db,
	}
}

// Lock serializes writers of one space until the surrounding transaction ends.
func (r *ParkingEventRepository) Lock(ctx context.Context, space parking.SpaceID) error {
	if err := r.queries.LockParkingSpace(ctx, r.db, space.String()); err != nil {
		return infra.WrapRepoErr("failed to lock parking space", err)
	}
	return nil
}

func (r *ParkingEventRepository) Latest(ctx context.Context, space parking.SpaceID) (*parking.StatusEvent, error) {
	row, err := r.queries.GetLatestParkingStatusByID(ctx, r.db, space.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking space has no status history", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get latest parking status", err)
	}
	return toStatusEvent(row), nil
}

func (r *ParkingEventRepository) Append(ctx context.Context, ev *parking.StatusEvent) (int64, error) {
	params := dbquery.InsertParkingStatusParams{
		ParkingID: ev.Space().String(),
		Status:    ev.Status().String(),
		Source:    ev.Source().String(),
		Timestamp: pgconv.TimeToPgtype(ev.Timestamp()),
		MsgID:     pgconv.StringPtrToPgtype(ev.MsgID()),
	}
	if o := ev.Occupant(); o != nil {
		params.Name = pgconv.StringPtrToPgtype(&o.Name)
		params.CarNo = pgconv.StringPtrToPgtype(&o.CarNo)
	}
	if m := ev.BookedMinutes(); m != nil {
		minutes := int32(*m) // #nosec G115 -- bounded by parking.MaxBookingMinutes
		params.BookedMinutes = pgconv.Int32PtrToPgtype(&minutes)
	}

	id, err := r.queries.InsertParkingStatus(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert parking status", err)
	}
	return id, nil
}

func toStatusEvent(row dbquery.ParkingStatus) *parking.StatusEvent {
	var occupant *parking.Occupant
	if row.Name.Valid || row.CarNo.Valid {
		occupant = &parking.Occupant{Name: row.Name.String, CarNo: row.CarNo.String}
	}
	var minutes *int
	if row.BookedMinutes.Valid {
		m := int(row.BookedMinutes.Int32)
		minutes = &m
	}
	return parking.ReconstructStatusEvent(
		row.ID,
		parking.SpaceID(row.ParkingID),
		parking.Status(row.Status),
		parking.Source(row.Source),
		pgconv.TimeFromPgtype(row.Timestamp),
		occupant,
		pgconv.StringPtrFromPgtype(row.MsgID),
		minutes,
	)
}
