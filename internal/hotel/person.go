package hotel

import (
	"fmt"
	"strings"
)

// Identity holds the contact details shared by guests and staff. Both embed
// it instead of inheriting from a person base type.
type Identity struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func NewIdentity(name, contact, email string) (Identity, error) {
	inputErr := newInputError()

	if strings.TrimSpace(name) == "" {
		inputErr.addError("name", "name must be a non-empty string")
	}

	if strings.TrimSpace(contact) == "" {
		inputErr.addError("contact", "contact must be a non-empty string")
	}

	if !validEmail(email) {
		inputErr.addError("email", "invalid email format")
	}

	if inputErr.fieldsCount() > 0 {
		return Identity{}, inputErr
	}

	return Identity{
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
		Email:   strings.TrimSpace(email),
	}, nil
}

func (id *Identity) SetName(value string) error {
	if strings.TrimSpace(value) == "" {
		inputErr := newInputError()
		inputErr.addError("name", "name must be a non-empty string")

		return inputErr
	}

	id.Name = strings.TrimSpace(value)

	return nil
}

func (id *Identity) SetContact(value string) error {
	if strings.TrimSpace(value) == "" {
		inputErr := newInputError()
		inputErr.addError("contact", "contact must be a non-empty string")

		return inputErr
	}

	id.Contact = strings.TrimSpace(value)

	return nil
}

func (id *Identity) SetEmail(value string) error {
	if !validEmail(value) {
		inputErr := newInputError()
		inputErr.addError("email", "invalid email format")

		return inputErr
	}

	id.Email = strings.TrimSpace(value)

	return nil
}

func (id Identity) String() string {
	return fmt.Sprintf("Person: %s, Contact: %s, Email: %s", id.Name, id.Contact, id.Email)
}

type Guest struct {
	Identity

	ID            string   `json:"id"`
	LoyaltyPoints int      `json:"loyalty_points"`
	Preferences   []string `json:"preferences"`

	// reservations holds booking ids only; the booking registry owns the
	// records themselves.
	reservations []string
}

func NewGuest(guestID string, identity Identity) (*Guest, error) {
	if guestID == "" {
		inputErr := newInputError()
		inputErr.addError("guest_id", "provide a guest id")

		return nil, inputErr
	}

	//nolint:exhaustruct
	return &Guest{
		Identity: identity,
		ID:       guestID,
	}, nil
}

func (g *Guest) AddLoyaltyPoints(points int) error {
	if points <= 0 {
		inputErr := newInputError()
		inputErr.addError("points", "points must be a positive integer")

		return inputErr
	}

	g.LoyaltyPoints += points

	return nil
}

func (g *Guest) RedeemLoyaltyPoints(points int) error {
	if points <= 0 {
		inputErr := newInputError()
		inputErr.addError("points", "points must be a positive integer")

		return inputErr
	}

	if points > g.LoyaltyPoints {
		return fmt.Errorf("redeem %v of %v points: %w", points, g.LoyaltyPoints, ErrInsufficientPoints)
	}

	g.LoyaltyPoints -= points

	return nil
}

func (g *Guest) AddPreference(preference string) {
	for _, existing := range g.Preferences {
		if existing == preference {
			return
		}
	}

	g.Preferences = append(g.Preferences, preference)
}

// AddReservation appends a booking id to the guest's history. Entries are
// never removed, not even when the booking is cancelled.
func (g *Guest) AddReservation(bookingID string) {
	g.reservations = append(g.reservations, bookingID)
}

func (g *Guest) Reservations() []string {
	return append([]string(nil), g.reservations...)
}

func (g *Guest) String() string {
	return fmt.Sprintf("Guest ID: %s, %s, Loyalty Points: %d", g.ID, g.Identity.String(), g.LoyaltyPoints)
}

type Staff struct {
	Identity

	ID         string `json:"id"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

func NewStaff(staffID string, identity Identity, position, department string) (*Staff, error) {
	if staffID == "" {
		inputErr := newInputError()
		inputErr.addError("staff_id", "provide a staff id")

		return nil, inputErr
	}

	return &Staff{
		Identity:   identity,
		ID:         staffID,
		Position:   position,
		Department: department,
	}, nil
}

func (s *Staff) String() string {
	return fmt.Sprintf(
		"Staff ID: %s, %s, Position: %s, Department: %s",
		s.ID,
		s.Identity.String(),
		s.Position,
		s.Department,
	)
}
