package hotel

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
	StatusCompleted BookingStatus = "Completed"
)

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24) //nolint:gomnd
}

type Booking struct {
	ID       string        `json:"id"`
	Guest    *Guest        `json:"guest"`
	Room     *Room         `json:"room"`
	CheckIn  time.Time     `json:"check_in"`
	CheckOut time.Time     `json:"check_out"`
	Status   BookingStatus `json:"status"`
	// TotalCost starts at price x nights and accumulates each added
	// service; it is never recomputed from scratch.
	TotalCost float64 `json:"total_cost"`

	services []*Service
}

// NewBooking reserves the room for the given range and registers the booking
// id in the guest's reservation history.
func NewBooking(bookingID string, guest *Guest, room *Room, checkIn, checkOut time.Time) (*Booking, error) {
	nights := nightsBetween(checkIn, checkOut)

	//nolint:exhaustruct
	booking := &Booking{
		ID:        bookingID,
		Guest:     guest,
		Room:      room,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    StatusConfirmed,
		TotalCost: room.Price * float64(nights),
	}

	if err := room.Book(checkIn, checkOut); err != nil {
		return nil, fmt.Errorf("book room %v: %w", room.Number, err)
	}

	guest.AddReservation(booking.ID)

	return booking, nil
}

func (b *Booking) Nights() int {
	return nightsBetween(b.CheckIn, b.CheckOut)
}

// AddService appends the service and accumulates its price. Duplicates are
// allowed and each occurrence adds its cost again.
func (b *Booking) AddService(service *Service) {
	b.services = append(b.services, service)
	b.TotalCost += service.Price
}

func (b *Booking) Services() []*Service {
	return append([]*Service(nil), b.services...)
}

func (b *Booking) SetStatus(status BookingStatus) error {
	switch status {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		b.Status = status

		return nil
	default:
		return fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}
}

// Cancel is a no-op on an already cancelled booking; otherwise it releases
// the room.
func (b *Booking) Cancel() {
	if b.Status == StatusCancelled {
		return
	}

	b.Status = StatusCancelled
	b.Room.Release()
}

func (b *Booking) String() string {
	names := make([]string, 0, len(b.services))
	for _, service := range b.services {
		names = append(names, service.Name)
	}

	services := strings.Join(names, ", ")
	if services == "" {
		services = "None"
	}

	return fmt.Sprintf(
		"Booking ID: %s\nGuest: %s\nRoom: %s (%s)\nDates: %s to %s (%d nights)\nStatus: %s\nTotal Cost: $%.2f\nAdditional Services: %s",
		b.ID,
		b.Guest.Name,
		b.Room.Number,
		b.Room.Type.TypeName,
		b.CheckIn.Format(dateLayout),
		b.CheckOut.Format(dateLayout),
		b.Nights(),
		b.Status,
		b.TotalCost,
		services,
	)
}
