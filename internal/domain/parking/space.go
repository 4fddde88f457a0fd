package parking

import (
	"errors"
	"strconv"
)

var ErrUnknownSpace = errors.New("unknown parking space")

const (
	rowLetters  = "ABCDE"
	columnCount = 5
	topicPrefix = "/parking_lot/"
	TotalSpaces = len(rowLetters) * columnCount
)

// SpaceID is one of the 25 fixed identifiers, row letter followed by column number.
type SpaceID string

func ParseSpaceID(s string) (SpaceID, error) {
	if len(s) != 2 {
		return "", ErrUnknownSpace
	}
	if !isRow(s[0]) {
		return "", ErrUnknownSpace
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil || col < 1 || col > columnCount {
		return "", ErrUnknownSpace
	}
	return SpaceID(s), nil
}

// AllSpaces lists every identifier in ascending order (A1..A5, B1..E5).
func AllSpaces() []SpaceID {
	ids := make([]SpaceID, 0, TotalSpaces)
	for i := 0; i < len(rowLetters); i++ {
		for col := 1; col <= columnCount; col++ {
			ids = append(ids, SpaceID(string(rowLetters[i])+strconv.Itoa(col)))
		}
	}
	return ids
}

func (s SpaceID) String() string {
	return string(s)
}

// Topic is the bus topic the space's sensor publishes on.
func (s SpaceID) Topic() string {
	return topicPrefix + string(s)
}

func isRow(b byte) bool {
	for i := 0; i < len(rowLetters); i++ {
		if rowLetters[i] == b {
			return true
		}
	}
	return false
}
