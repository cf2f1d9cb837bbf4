package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB keeps every registry in process memory. Rooms, bookings and payments
// also keep an insertion-ordered slice so scans are deterministic.
type DB struct {
	mu sync.Mutex
	l  *logger.Logger

	roomTypes []*hotel.RoomType
	rooms     []*hotel.Room
	roomIndex map[string]*hotel.Room

	guests   map[string]*hotel.Guest
	staff    map[string]*hotel.Staff
	services map[string]*hotel.Service

	bookings     map[string]*hotel.Booking
	bookingOrder []*hotel.Booking

	payments     map[string]*hotel.Payment
	paymentOrder []*hotel.Payment

	invoices       map[string]*hotel.Invoice
	invoiceIndex   map[string]*hotel.Invoice
	serviceRequest map[string]*hotel.ServiceRequest
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:              conf.L,
		roomIndex:      make(map[string]*hotel.Room),
		guests:         make(map[string]*hotel.Guest),
		staff:          make(map[string]*hotel.Staff),
		services:       make(map[string]*hotel.Service),
		bookings:       make(map[string]*hotel.Booking),
		payments:       make(map[string]*hotel.Payment),
		invoices:       make(map[string]*hotel.Invoice),
		invoiceIndex:   make(map[string]*hotel.Invoice),
		serviceRequest: make(map[string]*hotel.ServiceRequest),
	}
}

// SaveRoomType registers the room type once; duplicates by name are ignored.
func (db *DB) SaveRoomType(_ context.Context, roomType *hotel.RoomType) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.roomTypes {
		if existing.TypeName == roomType.TypeName {
			return nil
		}
	}

	db.roomTypes = append(db.roomTypes, roomType)

	return nil
}

func (db *DB) SaveRoom(_ context.Context, room *hotel.Room) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.roomIndex[room.Number]; ok {
		return nil
	}

	db.roomIndex[room.Number] = room
	db.rooms = append(db.rooms, room)

	return nil
}

func (db *DB) SaveGuest(_ context.Context, guest *hotel.Guest) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.guests[guest.ID]; ok {
		return nil
	}

	db.guests[guest.ID] = guest

	return nil
}

func (db *DB) SaveStaff(_ context.Context, staff *hotel.Staff) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.staff[staff.ID]; ok {
		return nil
	}

	db.staff[staff.ID] = staff

	return nil
}

func (db *DB) SaveService(_ context.Context, service *hotel.Service) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.services[service.ID]; ok {
		return nil
	}

	db.services[service.ID] = service

	return nil
}

func (db *DB) SaveBooking(_ context.Context, booking *hotel.Booking) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.bookings[booking.ID]; ok {
		return nil
	}

	db.bookings[booking.ID] = booking
	db.bookingOrder = append(db.bookingOrder, booking)

	return nil
}

func (db *DB) SavePayment(_ context.Context, payment *hotel.Payment) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.payments[payment.ID]; ok {
		return nil
	}

	db.payments[payment.ID] = payment
	db.paymentOrder = append(db.paymentOrder, payment)

	return nil
}

func (db *DB) SaveInvoice(_ context.Context, invoice *hotel.Invoice) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.invoices[invoice.ID]; ok {
		return nil
	}

	db.invoices[invoice.ID] = invoice
	db.invoiceIndex[invoice.Payment.ID] = invoice

	return nil
}

func (db *DB) SaveServiceRequest(_ context.Context, request *hotel.ServiceRequest) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.serviceRequest[request.ID]; ok {
		return nil
	}

	db.serviceRequest[request.ID] = request

	return nil
}

func (db *DB) GetGuest(_ context.Context, guestID string) (*hotel.Guest, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	guest, ok := db.guests[guestID]
	if !ok {
		return nil, fmt.Errorf("guest %v: %w", guestID, hotel.ErrRecordNotFound)
	}

	return guest, nil
}

func (db *DB) GetStaff(_ context.Context, staffID string) (*hotel.Staff, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	staff, ok := db.staff[staffID]
	if !ok {
		return nil, fmt.Errorf("staff %v: %w", staffID, hotel.ErrRecordNotFound)
	}

	return staff, nil
}

func (db *DB) GetRoom(_ context.Context, roomNumber string) (*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	room, ok := db.roomIndex[roomNumber]
	if !ok {
		return nil, fmt.Errorf("room %v: %w", roomNumber, hotel.ErrRecordNotFound)
	}

	return room, nil
}

func (db *DB) GetService(_ context.Context, serviceID string) (*hotel.Service, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	service, ok := db.services[serviceID]
	if !ok {
		return nil, fmt.Errorf("service %v: %w", serviceID, hotel.ErrRecordNotFound)
	}

	return service, nil
}

func (db *DB) GetBooking(_ context.Context, bookingID string) (*hotel.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	booking, ok := db.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %v: %w", bookingID, hotel.ErrRecordNotFound)
	}

	return booking, nil
}

func (db *DB) ListRooms(_ context.Context) ([]*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return append([]*hotel.Room(nil), db.rooms...), nil
}

func (db *DB) ListRoomTypes(_ context.Context) ([]*hotel.RoomType, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return append([]*hotel.RoomType(nil), db.roomTypes...), nil
}

func (db *DB) ListBookingsByGuest(_ context.Context, guestID string) ([]*hotel.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var bookings []*hotel.Booking

	for _, booking := range db.bookingOrder {
		if booking.Guest.ID == guestID {
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

// FindPaymentByBooking returns the first payment recorded for the booking,
// whatever its status.
func (db *DB) FindPaymentByBooking(_ context.Context, bookingID string) (*hotel.Payment, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, payment := range db.paymentOrder {
		if payment.Booking.ID == bookingID {
			return payment, nil
		}
	}

	return nil, fmt.Errorf("payment for booking %v: %w", bookingID, hotel.ErrRecordNotFound)
}

func (db *DB) FindInvoiceByPayment(_ context.Context, paymentID string) (*hotel.Invoice, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	invoice, ok := db.invoiceIndex[paymentID]
	if !ok {
		return nil, fmt.Errorf("invoice for payment %v: %w", paymentID, hotel.ErrRecordNotFound)
	}

	return invoice, nil
}
