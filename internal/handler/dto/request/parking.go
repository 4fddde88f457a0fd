package request

import "parking-monitor/internal/usecase/commands"

type BookParkingRequest struct {
	Name         string `json:"name" binding:"required"`
	CarNo        string `json:"carNo" binding:"required"`
	ParkingSpace string `json:"parkingSpace" binding:"required"`
	// Time is the booked duration in minutes, display only. The max matches parking.MaxBookingMinutes.
	Time *int `json:"time" binding:"omitempty,min=0,max=10080"`
}

func (r *BookParkingRequest) ToCommand() commands.BookParkingRequest {
	minutes := 0
	if r.Time != nil {
		minutes = *r.Time
	}
	return commands.BookParkingRequest{
		Name:         r.Name,
		CarNo:        r.CarNo,
		ParkingSpace: r.ParkingSpace,
		Minutes:      minutes,
	}
}

type ReleaseParkingRequest struct {
	ParkingSpace string `json:"parkingSpace" binding:"required"`
}

func (r *ReleaseParkingRequest) ToCommand() commands.ReleaseParkingRequest {
	return commands.ReleaseParkingRequest{ParkingSpace: r.ParkingSpace}
}
