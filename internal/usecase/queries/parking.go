package queries

import (
	"context"
	"time"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/pkg/errs"
)

// ParkingStatusView is one stored status event as shown to clients.
type ParkingStatusView struct {
	ID            int64     `json:"-"`
	ParkingID     string    `json:"parking_id"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	Timestamp     time.Time `json:"timestamp"`
	Name          *string   `json:"name"`
	CarNo         *string   `json:"carNo"`
	MsgID         *string   `json:"_msgid,omitempty"`
	BookedMinutes *int32    `json:"bookedMinutes,omitempty"`
}

type ParkingReadStore interface {
	LatestPerSpace(ctx context.Context) ([]*ParkingStatusView, error)
	History(ctx context.Context, parkingID string) ([]*ParkingStatusView, error)
	HeldSpaces(ctx context.Context) ([]string, error)
}

type ParkingQueries interface {
	// CurrentStatuses returns the latest event of every space that has one, ordered by id.
	CurrentStatuses(ctx context.Context) ([]*ParkingStatusView, error)
	// History returns every event of a space, oldest first. Unknown ids yield an empty list.
	History(ctx context.Context, parkingID string) ([]*ParkingStatusView, error)
	// BookedSpaces returns the spaces whose latest event is a booking occupancy.
	BookedSpaces(ctx context.Context) ([]parking.SpaceID, error)
}

type parkingQueriesImpl struct {
	store ParkingReadStore
}

func NewParkingQueries(store ParkingReadStore) ParkingQueries {
	return &parkingQueriesImpl{store: store}
}

func (q *parkingQueriesImpl) CurrentStatuses(ctx context.Context) ([]*ParkingStatusView, error) {
	views, err := q.store.LatestPerSpace(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*ParkingStatusView{}
	}
	return views, nil
}

func (q *parkingQueriesImpl) History(ctx context.Context, parkingID string) ([]*ParkingStatusView, error) {
	views, err := q.store.History(ctx, parkingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*ParkingStatusView{}
	}
	return views, nil
}

func (q *parkingQueriesImpl) BookedSpaces(ctx context.Context) ([]parking.SpaceID, error) {
	ids, err := q.store.HeldSpaces(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	spaces := make([]parking.SpaceID, 0, len(ids))
	for _, id := range ids {
		space, err := parking.ParseSpaceID(id)
		if err != nil {
			// ids outside the lot are never simulated
			continue
		}
		spaces = append(spaces, space)
	}
	return spaces, nil
}
