package hotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func testRoomType() *RoomType {
	return &RoomType{TypeName: "Single", Description: "A cozy room for one", Capacity: 1}
}

func testRoom(t *testing.T, price float64) *Room {
	t.Helper()

	room, err := NewRoom("101", testRoomType(), []string{"WiFi", "TV"}, price)
	assert.NoError(t, err)

	return room
}

func TestNewRoomRejectsNonPositivePrice(t *testing.T) {
	_, err := NewRoom("101", testRoomType(), nil, 0)
	assert.NotNil(t, IsInputError(err))

	_, err = NewRoom("101", testRoomType(), nil, -10)
	assert.NotNil(t, IsInputError(err))
}

func TestCheckAvailabilityInvalidRange(t *testing.T) {
	room := testRoom(t, 100)

	_, err := room.CheckAvailability(day(4), day(4))
	assert.NotNil(t, IsInputError(err))

	_, err = room.CheckAvailability(day(5), day(4))
	assert.NotNil(t, IsInputError(err))
}

func TestCheckAvailabilityHalfOpenBoundary(t *testing.T) {
	room := testRoom(t, 100)

	assert.NoError(t, room.Book(day(1), day(4)))

	free, err := room.CheckAvailability(day(2), day(3))
	assert.NoError(t, err)
	assert.False(t, free)

	free, err = room.CheckAvailability(day(1), day(4))
	assert.NoError(t, err)
	assert.False(t, free)

	// The check-out day itself is free for a new arrival.
	free, err = room.CheckAvailability(day(4), day(6))
	assert.NoError(t, err)
	assert.True(t, free)

	free, err = room.CheckAvailability(day(6), day(8))
	assert.NoError(t, err)
	assert.True(t, free)
}

func TestBookConflictReturnsAvailabilityError(t *testing.T) {
	room := testRoom(t, 100)

	assert.NoError(t, room.Book(day(1), day(4)))

	err := room.Book(day(2), day(3))
	assert.NotNil(t, IsAvailabilityError(err))
	assert.Len(t, room.BookedRanges(), 1)
}

func TestBookMarksRoomUnavailable(t *testing.T) {
	room := testRoom(t, 100)
	assert.True(t, room.Available)

	assert.NoError(t, room.Book(day(1), day(4)))
	assert.False(t, room.Available)
}

func TestReleaseIgnoresRemainingRanges(t *testing.T) {
	room := testRoom(t, 100)

	assert.NoError(t, room.Book(day(1), day(4)))
	assert.NoError(t, room.Book(day(10), day(12)))

	room.Release()

	// Release flips the flag without consulting the remaining ranges.
	assert.True(t, room.Available)
	assert.Len(t, room.BookedRanges(), 2)
}

func TestRoomAmenities(t *testing.T) {
	room := testRoom(t, 100)

	room.AddAmenity("Mini Bar")
	room.AddAmenity("Mini Bar")
	assert.Equal(t, []string{"WiFi", "TV", "Mini Bar"}, room.Amenities)

	room.RemoveAmenity("TV")
	assert.Equal(t, []string{"WiFi", "Mini Bar"}, room.Amenities)

	room.RemoveAmenity("Sauna")
	assert.Equal(t, []string{"WiFi", "Mini Bar"}, room.Amenities)
}

func TestRoomSetPrice(t *testing.T) {
	room := testRoom(t, 100)

	assert.NotNil(t, IsInputError(room.SetPrice(0)))
	assert.Equal(t, 100.0, room.Price)

	assert.NoError(t, room.SetPrice(150))
	assert.Equal(t, 150.0, room.Price)
}

func TestRoomString(t *testing.T) {
	room := testRoom(t, 100)

	assert.Equal(
		t,
		"Room 101 - Single (Price: $100.00/night, Status: Available) Amenities: WiFi, TV",
		room.String(),
	)
}
