package dbquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const parkingStatusColumns = `id, parking_id, status, source, timestamp, msg_id, name, car_no, booked_minutes`

func scanParkingStatus(row pgx.Row) (ParkingStatus, error) {
	var i ParkingStatus
	err := row.Scan(
		&i.ID,
		&i.ParkingID,
		&i.Status,
		&i.Source,
		&i.Timestamp,
		&i.MsgID,
		&i.Name,
		&i.CarNo,
		&i.BookedMinutes,
	)
	return i, err
}

func collectParkingStatuses(rows pgx.Rows) ([]ParkingStatus, error) {
	defer rows.Close()
	var items []ParkingStatus
	for rows.Next() {
		i, err := scanParkingStatus(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertParkingStatus = `
INSERT INTO parking_status (parking_id, status, source, timestamp, msg_id, name, car_no, booked_minutes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

type InsertParkingStatusParams struct {
	ParkingID     string
	Status        string
	Source        string
	Timestamp     pgtype.Timestamptz
	MsgID         pgtype.Text
	Name          pgtype.Text
	CarNo         pgtype.Text
	BookedMinutes pgtype.Int4
}

func (q *Queries) InsertParkingStatus(ctx context.Context, db DBTX, arg InsertParkingStatusParams) (int64, error) {
	row := db.QueryRow(ctx, insertParkingStatus,
		arg.ParkingID,
		arg.Status,
		arg.Source,
		arg.Timestamp,
		arg.MsgID,
		arg.Name,
		arg.CarNo,
		arg.BookedMinutes,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

// ties on timestamp fall back to insertion order
const getLatestParkingStatuses = `
SELECT DISTINCT ON (parking_id) ` + parkingStatusColumns + `
FROM parking_status
ORDER BY parking_id ASC, timestamp DESC, id DESC
`

func (q *Queries) GetLatestParkingStatuses(ctx context.Context, db DBTX) ([]ParkingStatus, error) {
	rows, err := db.Query(ctx, getLatestParkingStatuses)
	if err != nil {
		return nil, err
	}
	return collectParkingStatuses(rows)
}

const getLatestParkingStatusByID = `
SELECT ` + parkingStatusColumns + `
FROM parking_status
WHERE parking_id = $1
ORDER BY timestamp DESC, id DESC
LIMIT 1
`

func (q *Queries) GetLatestParkingStatusByID(ctx context.Context, db DBTX, parkingID string) (ParkingStatus, error) {
	row := db.QueryRow(ctx, getLatestParkingStatusByID, parkingID)
	return scanParkingStatus(row)
}

const getParkingStatusHistory = `
SELECT ` + parkingStatusColumns + `
FROM parking_status
WHERE parking_id = $1
ORDER BY timestamp ASC, id ASC
`

func (q *Queries) GetParkingStatusHistory(ctx context.Context, db DBTX, parkingID string) ([]ParkingStatus, error) {
	rows, err := db.Query(ctx, getParkingStatusHistory, parkingID)
	if err != nil {
		return nil, err
	}
	return collectParkingStatuses(rows)
}

const getHeldParkingIDs = `
SELECT parking_id
FROM (
    SELECT DISTINCT ON (parking_id) parking_id, status, source
    FROM parking_status
    ORDER BY parking_id ASC, timestamp DESC, id DESC
) latest
WHERE status = $1 AND source = $2
ORDER BY parking_id ASC
`

type GetHeldParkingIDsParams struct {
	Status string
	Source string
}

func (q *Queries) GetHeldParkingIDs(ctx context.Context, db DBTX, arg GetHeldParkingIDsParams) ([]string, error) {
	rows, err := db.Query(ctx, getHeldParkingIDs, arg.Status, arg.Source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// transaction-scoped, released on commit or rollback
const lockParkingSpace = `SELECT pg_advisory_xact_lock(hashtext($1))`

func (q *Queries) LockParkingSpace(ctx context.Context, db DBTX, parkingID string) error {
	_, err := db.Exec(ctx, lockParkingSpace, parkingID)
	return err
}
