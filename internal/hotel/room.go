package hotel

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// RoomType describes a category of rooms. It is a plain value with no
// behavior beyond rendering.
type RoomType struct {
	TypeName    string `json:"type_name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

func (t *RoomType) String() string {
	return fmt.Sprintf("%s Room (Capacity: %d): %s", t.TypeName, t.Capacity, t.Description)
}

// DateRange is a half-open interval [CheckIn, CheckOut): the check-out day
// itself is free for a new arrival.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func (r DateRange) Overlaps(other DateRange) bool {
	return other.CheckOut.After(r.CheckIn) && other.CheckIn.Before(r.CheckOut)
}

type Room struct {
	Number    string    `json:"number"`
	Type      *RoomType `json:"type"`
	Amenities []string  `json:"amenities"`
	Price     float64   `json:"price"`
	// Available tracks only the latest Book/Release call. A room with
	// remaining future ranges still reads as available after Release.
	Available bool `json:"available"`

	bookedRanges []DateRange
}

func NewRoom(number string, roomType *RoomType, amenities []string, price float64) (*Room, error) {
	inputErr := newInputError()

	if number == "" {
		inputErr.addError("number", "provide a room number")
	}

	if roomType == nil {
		inputErr.addError("type", "provide a room type")
	}

	if price <= 0 {
		inputErr.addError("price", "price must be a positive number")
	}

	if inputErr.fieldsCount() > 0 {
		return nil, inputErr
	}

	//nolint:exhaustruct
	return &Room{
		Number:    number,
		Type:      roomType,
		Amenities: append([]string(nil), amenities...),
		Price:     price,
		Available: true,
	}, nil
}

func validateRange(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		inputErr := newInputError()
		inputErr.addError("check_in", "check-in date must be before check-out date")

		return inputErr
	}

	return nil
}

// CheckAvailability reports whether the room is free for the whole half-open
// range [checkIn, checkOut).
func (r *Room) CheckAvailability(checkIn, checkOut time.Time) (bool, error) {
	if err := validateRange(checkIn, checkOut); err != nil {
		return false, err
	}

	want := DateRange{CheckIn: checkIn, CheckOut: checkOut}

	for _, booked := range r.bookedRanges {
		if booked.Overlaps(want) {
			return false, nil
		}
	}

	return true, nil
}

func (r *Room) Book(checkIn, checkOut time.Time) error {
	free, err := r.CheckAvailability(checkIn, checkOut)
	if err != nil {
		return err
	}

	if !free {
		availabilityErr := NewAvailabilityError()
		availabilityErr.AddUnavailableRoom(r.Number, checkIn, checkOut)

		return availabilityErr
	}

	r.bookedRanges = append(r.bookedRanges, DateRange{CheckIn: checkIn, CheckOut: checkOut})
	r.Available = false

	return nil
}

// Release marks the room available again. It does not consult the remaining
// booked ranges.
func (r *Room) Release() {
	r.Available = true
}

func (r *Room) BookedRanges() []DateRange {
	return append([]DateRange(nil), r.bookedRanges...)
}

func (r *Room) AddAmenity(amenity string) {
	for _, existing := range r.Amenities {
		if existing == amenity {
			return
		}
	}

	r.Amenities = append(r.Amenities, amenity)
}

func (r *Room) RemoveAmenity(amenity string) {
	for i, existing := range r.Amenities {
		if existing == amenity {
			r.Amenities = append(r.Amenities[:i], r.Amenities[i+1:]...)

			return
		}
	}
}

func (r *Room) SetPrice(value float64) error {
	if value <= 0 {
		inputErr := newInputError()
		inputErr.addError("price", "price must be a positive number")

		return inputErr
	}

	r.Price = value

	return nil
}

func (r *Room) String() string {
	status := "Available"
	if !r.Available {
		status = "Booked"
	}

	return fmt.Sprintf(
		"Room %s - %s (Price: $%.2f/night, Status: %s) Amenities: %s",
		r.Number,
		r.Type.TypeName,
		r.Price,
		status,
		strings.Join(r.Amenities, ", "),
	)
}
