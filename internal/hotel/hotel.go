package hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avstrong/hotelier/internal/logger"
)

type idGenerator interface {
	NextID(ctx context.Context, prefix string) (string, error)
}

type storageReader interface {
	GetGuest(ctx context.Context, guestID string) (*Guest, error)
	GetRoom(ctx context.Context, roomNumber string) (*Room, error)
	GetService(ctx context.Context, serviceID string) (*Service, error)
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	ListBookingsByGuest(ctx context.Context, guestID string) ([]*Booking, error)
	FindPaymentByBooking(ctx context.Context, bookingID string) (*Payment, error)
	FindInvoiceByPayment(ctx context.Context, paymentID string) (*Invoice, error)
}

type storageWriter interface {
	SaveRoomType(ctx context.Context, roomType *RoomType) error
	SaveRoom(ctx context.Context, room *Room) error
	SaveGuest(ctx context.Context, guest *Guest) error
	SaveStaff(ctx context.Context, staff *Staff) error
	SaveService(ctx context.Context, service *Service) error
	SaveBooking(ctx context.Context, booking *Booking) error
	SavePayment(ctx context.Context, payment *Payment) error
	SaveInvoice(ctx context.Context, invoice *Invoice) error
	SaveServiceRequest(ctx context.Context, request *ServiceRequest) error
}

type storage interface {
	storageReader
	storageWriter
}

// Manager is the aggregate root: it owns the registries through the storage
// and orchestrates bookings, payments, invoices and service requests.
type Manager struct {
	// mu serializes every operation. Entity pointers escape the store's
	// lock, so check-then-book on a room and the follow-up mutations must
	// be exclusive across requests.
	mu          sync.Mutex
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
	name        string
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator, name string) *Manager {
	//nolint:exhaustruct
	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
		name:        name,
	}
}

func (m *Manager) Name() string {
	return m.name
}

func (m *Manager) AddRoomType(ctx context.Context, roomType *RoomType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.SaveRoomType(ctx, roomType); err != nil {
		return fmt.Errorf("save room type %v: %w", roomType.TypeName, err)
	}

	return nil
}

func (m *Manager) AddRoom(ctx context.Context, room *Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.SaveRoom(ctx, room); err != nil {
		return fmt.Errorf("save room %v: %w", room.Number, err)
	}

	return nil
}

func (m *Manager) AddGuest(ctx context.Context, guest *Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.SaveGuest(ctx, guest); err != nil {
		return fmt.Errorf("save guest %v: %w", guest.ID, err)
	}

	return nil
}

func (m *Manager) AddStaff(ctx context.Context, staff *Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.SaveStaff(ctx, staff); err != nil {
		return fmt.Errorf("save staff %v: %w", staff.ID, err)
	}

	return nil
}

func (m *Manager) AddService(ctx context.Context, service *Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.SaveService(ctx, service); err != nil {
		return fmt.Errorf("save service %v: %w", service.ID, err)
	}

	return nil
}

// FindAvailableRooms filters the registry by availability for the range and,
// case-insensitively, by room-type name. An empty roomType matches all types.
func (m *Manager) FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms, err := m.storage.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	var available []*Room

	for _, room := range rooms {
		free, err := room.CheckAvailability(checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		if !free {
			continue
		}

		if roomType != "" && !strings.EqualFold(room.Type.TypeName, roomType) {
			continue
		}

		available = append(available, room)
	}

	return available, nil
}

type MakeBookingInput struct {
	GuestID    string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
}

func (m *Manager) MakeBooking(ctx context.Context, input MakeBookingInput) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	guest, err := m.storage.GetGuest(ctx, input.GuestID)
	if err != nil {
		return nil, fmt.Errorf("get guest %v: %w", input.GuestID, err)
	}

	room, err := m.storage.GetRoom(ctx, input.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("get room %v: %w", input.RoomNumber, err)
	}

	bookingID, err := m.idGenerator.NextID(ctx, "")
	if err != nil {
		return nil, ErrNextID
	}

	booking, err := NewBooking(bookingID, guest, room, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	if err := m.storage.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking %v: %w", booking.ID, err)
	}

	// 10 loyalty points per night stayed.
	if err := guest.AddLoyaltyPoints(booking.Nights() * 10); err != nil { //nolint:gomnd
		return nil, fmt.Errorf("award loyalty points to guest %v: %w", guest.ID, err)
	}

	m.l.LogInfo("Booked room %v for guest %v (%v nights)", room.Number, guest.ID, booking.Nights())

	return booking, nil
}

func (m *Manager) AddServiceToBooking(ctx context.Context, bookingID, serviceID string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, err := m.storage.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %v: %w", bookingID, err)
	}

	service, err := m.storage.GetService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service %v: %w", serviceID, err)
	}

	booking.AddService(service)

	return booking, nil
}

type ProcessPaymentInput struct {
	BookingID string
	Amount    float64
	Method    string
}

// ProcessPayment completes a payment for the booking and freezes an invoice
// for it as a pair.
func (m *Manager) ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, err := m.storage.GetBooking(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %v: %w", input.BookingID, err)
	}

	paymentID, err := m.idGenerator.NextID(ctx, "PAY-")
	if err != nil {
		return nil, ErrNextID
	}

	payment := NewPayment(paymentID, booking, input.Amount, input.Method)
	payment.Process()

	if err := m.storage.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("save payment %v: %w", payment.ID, err)
	}

	invoiceID, err := m.idGenerator.NextID(ctx, "INV-")
	if err != nil {
		return nil, ErrNextID
	}

	invoice := NewInvoice(invoiceID, payment)

	if err := m.storage.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("save invoice %v: %w", invoice.ID, err)
	}

	m.l.LogInfo("Processed payment %v for booking %v, invoice %v", payment.ID, booking.ID, invoice.ID)

	return payment, nil
}

// CancelBooking cancels the booking and refunds the first completed payment
// recorded for it, if any.
func (m *Manager) CancelBooking(ctx context.Context, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, err := m.storage.GetBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking %v: %w", bookingID, err)
	}

	booking.Cancel()

	payment, err := m.storage.FindPaymentByBooking(ctx, bookingID)
	if errors.Is(err, ErrRecordNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("find payment for booking %v: %w", bookingID, err)
	}

	if payment.Status != PaymentCompleted {
		return nil
	}

	if err := payment.RefundFull(); err != nil {
		return fmt.Errorf("refund payment %v: %w", payment.ID, err)
	}

	m.l.LogInfo("Refunded payment %v for cancelled booking %v", payment.ID, bookingID)

	return nil
}

func (m *Manager) CreateServiceRequest(ctx context.Context, guestID, serviceID string) (*ServiceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	guest, err := m.storage.GetGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("get guest %v: %w", guestID, err)
	}

	service, err := m.storage.GetService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service %v: %w", serviceID, err)
	}

	if !service.Available {
		return nil, fmt.Errorf("service %v: %w", serviceID, ErrServiceUnavailable)
	}

	requestID, err := m.idGenerator.NextID(ctx, "SR-")
	if err != nil {
		return nil, ErrNextID
	}

	request := NewServiceRequest(requestID, guest, service)

	if err := m.storage.SaveServiceRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("save service request %v: %w", request.ID, err)
	}

	return request, nil
}

func (m *Manager) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, err := m.storage.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %v: %w", bookingID, err)
	}

	return booking, nil
}

func (m *Manager) GetGuestBookings(ctx context.Context, guestID string) ([]*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.storage.GetGuest(ctx, guestID); err != nil {
		return nil, fmt.Errorf("get guest %v: %w", guestID, err)
	}

	bookings, err := m.storage.ListBookingsByGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for guest %v: %w", guestID, err)
	}

	return bookings, nil
}

// GetInvoice resolves the booking -> payment -> invoice chain.
func (m *Manager) GetInvoice(ctx context.Context, bookingID string) (*Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	payment, err := m.storage.FindPaymentByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find payment for booking %v: %w", bookingID, err)
	}

	invoice, err := m.storage.FindInvoiceByPayment(ctx, payment.ID)
	if err != nil {
		return nil, fmt.Errorf("find invoice for payment %v: %w", payment.ID, err)
	}

	return invoice, nil
}
