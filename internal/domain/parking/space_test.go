//go:build unit

package parking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-monitor/internal/domain/parking"
)

func TestParseSpaceID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    parking.SpaceID
		wantErr bool
	}{
		{name: "first space", input: "A1", want: "A1"},
		{name: "last space", input: "E5", want: "E5"},
		{name: "row out of range", input: "F1", wantErr: true},
		{name: "column zero", input: "A0", wantErr: true},
		{name: "column out of range", input: "A6", wantErr: true},
		{name: "lower case row", input: "a1", wantErr: true},
		{name: "too long", input: "A10", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parking.ParseSpaceID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, parking.ErrUnknownSpace)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllSpaces(t *testing.T) {
	spaces := parking.AllSpaces()

	require.Len(t, spaces, parking.TotalSpaces)
	assert.Equal(t, parking.SpaceID("A1"), spaces[0])
	assert.Equal(t, parking.SpaceID("A5"), spaces[4])
	assert.Equal(t, parking.SpaceID("B1"), spaces[5])
	assert.Equal(t, parking.SpaceID("E5"), spaces[24])

	seen := make(map[parking.SpaceID]bool)
	for i, s := range spaces {
		_, err := parking.ParseSpaceID(s.String())
		assert.NoError(t, err)
		assert.False(t, seen[s], "duplicate space %s", s)
		seen[s] = true
		if i > 0 {
			assert.Less(t, spaces[i-1].String(), s.String())
		}
	}
}

func TestSpaceID_Topic(t *testing.T) {
	assert.Equal(t, "/parking_lot/C3", parking.SpaceID("C3").Topic())
}

func TestParseStatus(t *testing.T) {
	st, err := parking.ParseStatus("Occupied")
	require.NoError(t, err)
	assert.Equal(t, parking.StatusOccupied, st)

	_, err = parking.ParseStatus("occupied")
	assert.ErrorIs(t, err, parking.ErrInvalidStatus)

	_, err = parking.ParseStatus("Booked")
	assert.ErrorIs(t, err, parking.ErrInvalidStatus)
}
