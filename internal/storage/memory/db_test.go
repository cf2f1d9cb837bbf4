package memory

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/logger"
)

func newDB() *DB {
	return New(Config{L: logger.New(log.Default())})
}

func seedRoom(t *testing.T, number string) *hotel.Room {
	t.Helper()

	roomType := &hotel.RoomType{TypeName: "Single", Description: "d", Capacity: 1}

	room, err := hotel.NewRoom(number, roomType, nil, 100)
	assert.NoError(t, err)

	return room
}

func seedGuest(t *testing.T, id string) *hotel.Guest {
	t.Helper()

	identity, err := hotel.NewIdentity("Alice", "555", "a@b.com")
	assert.NoError(t, err)

	guest, err := hotel.NewGuest(id, identity)
	assert.NoError(t, err)

	return guest
}

func TestSaveRoomDeduplicates(t *testing.T) {
	ctx := context.Background()
	db := newDB()

	first := seedRoom(t, "101")
	assert.NoError(t, db.SaveRoom(ctx, first))
	assert.NoError(t, db.SaveRoom(ctx, seedRoom(t, "101")))

	rooms, err := db.ListRooms(ctx)
	assert.NoError(t, err)
	assert.Len(t, rooms, 1)

	got, err := db.GetRoom(ctx, "101")
	assert.NoError(t, err)
	assert.Same(t, first, got)
}

func TestSaveRoomTypeDeduplicatesByName(t *testing.T) {
	ctx := context.Background()
	db := newDB()

	assert.NoError(t, db.SaveRoomType(ctx, &hotel.RoomType{TypeName: "Single", Description: "d", Capacity: 1}))
	assert.NoError(t, db.SaveRoomType(ctx, &hotel.RoomType{TypeName: "Single", Description: "other", Capacity: 2}))

	types, err := db.ListRoomTypes(ctx)
	assert.NoError(t, err)
	assert.Len(t, types, 1)
	assert.Equal(t, "d", types[0].Description)
}

func TestGetMissingRecords(t *testing.T) {
	ctx := context.Background()
	db := newDB()

	_, err := db.GetGuest(ctx, "G1")
	assert.ErrorIs(t, err, hotel.ErrRecordNotFound)

	_, err = db.GetRoom(ctx, "101")
	assert.ErrorIs(t, err, hotel.ErrRecordNotFound)

	_, err = db.GetStaff(ctx, "S1")
	assert.ErrorIs(t, err, hotel.ErrRecordNotFound)

	_, err = db.GetBooking(ctx, "B1")
	assert.ErrorIs(t, err, hotel.ErrRecordNotFound)

	_, err = db.FindPaymentByBooking(ctx, "B1")
	assert.ErrorIs(t, err, hotel.ErrRecordNotFound)
}

func TestFindPaymentByBookingReturnsFirstRecorded(t *testing.T) {
	ctx := context.Background()
	db := newDB()

	guest := seedGuest(t, "G1")
	room := seedRoom(t, "101")

	checkIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	booking, err := hotel.NewBooking("B1", guest, room, checkIn, checkOut)
	assert.NoError(t, err)

	first := hotel.NewPayment("PAY-1", booking, 300, "Cash")
	second := hotel.NewPayment("PAY-2", booking, 300, "Credit Card")

	assert.NoError(t, db.SavePayment(ctx, first))
	assert.NoError(t, db.SavePayment(ctx, second))

	got, err := db.FindPaymentByBooking(ctx, "B1")
	assert.NoError(t, err)
	assert.Same(t, first, got)
}

func TestFindInvoiceByPayment(t *testing.T) {
	ctx := context.Background()
	db := newDB()

	guest := seedGuest(t, "G1")
	room := seedRoom(t, "101")

	checkIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	booking, err := hotel.NewBooking("B1", guest, room, checkIn, checkOut)
	assert.NoError(t, err)

	payment := hotel.NewPayment("PAY-1", booking, 300, "Cash")
	payment.Process()
	invoice := hotel.NewInvoice("INV-1", payment)

	assert.NoError(t, db.SaveInvoice(ctx, invoice))

	got, err := db.FindInvoiceByPayment(ctx, "PAY-1")
	assert.NoError(t, err)
	assert.Same(t, invoice, got)

	_, err = db.FindInvoiceByPayment(ctx, "PAY-2")
	assert.ErrorIs(t, err, hotel.ErrRecordNotFound)
}

func TestListBookingsByGuestKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := newDB()

	guest := seedGuest(t, "G1")
	other := seedGuest(t, "G2")
	room := seedRoom(t, "101")
	second := seedRoom(t, "102")

	checkIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	bookingOne, err := hotel.NewBooking("B1", guest, room, checkIn, checkOut)
	assert.NoError(t, err)

	bookingTwo, err := hotel.NewBooking("B2", other, second, checkIn, checkOut)
	assert.NoError(t, err)

	bookingThree, err := hotel.NewBooking("B3", guest, second, checkOut, checkOut.AddDate(0, 0, 2))
	assert.NoError(t, err)

	assert.NoError(t, db.SaveBooking(ctx, bookingOne))
	assert.NoError(t, db.SaveBooking(ctx, bookingTwo))
	assert.NoError(t, db.SaveBooking(ctx, bookingThree))

	bookings, err := db.ListBookingsByGuest(ctx, "G1")
	assert.NoError(t, err)
	assert.Equal(t, []*hotel.Booking{bookingOne, bookingThree}, bookings)
}
