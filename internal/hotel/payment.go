package hotel

import (
	"fmt"
	"strings"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

type Payment struct {
	ID      string        `json:"id"`
	Booking *Booking      `json:"booking"`
	Amount  float64       `json:"amount"`
	Method  string        `json:"method"`
	Status  PaymentStatus `json:"status"`
}

func NewPayment(paymentID string, booking *Booking, amount float64, method string) *Payment {
	return &Payment{
		ID:      paymentID,
		Booking: booking,
		Amount:  amount,
		Method:  method,
		Status:  PaymentPending,
	}
}

// Process completes the payment. It is idempotent, and it re-confirms the
// booking even if the booking was cancelled earlier.
func (p *Payment) Process() {
	if p.Status == PaymentCompleted {
		return
	}

	p.Status = PaymentCompleted
	p.Booking.Status = StatusConfirmed
}

// Refund refunds the given amount. A full refund also cancels the booking;
// the room is not released.
func (p *Payment) Refund(amount float64) error {
	if amount > p.Amount {
		inputErr := newInputError()
		inputErr.addError("amount", "refund amount cannot exceed original payment")

		return inputErr
	}

	p.Status = PaymentRefunded

	if amount == p.Amount {
		p.Booking.Status = StatusCancelled
	}

	return nil
}

func (p *Payment) RefundFull() error {
	return p.Refund(p.Amount)
}

func (p *Payment) String() string {
	return fmt.Sprintf(
		"Payment ID: %s\nBooking ID: %s\nAmount: $%.2f\nMethod: %s\nStatus: %s",
		p.ID,
		p.Booking.ID,
		p.Amount,
		p.Method,
		p.Status,
	)
}

// TaxRate applied to every invoice.
const TaxRate = 0.10

// Invoice is a financial snapshot: every charge is derived once from the
// payment's booking at construction and never recomputed, even if the
// booking gains services afterwards.
type Invoice struct {
	ID             string   `json:"id"`
	Payment        *Payment `json:"payment"`
	TaxRate        float64  `json:"tax_rate"`
	RoomCharges    float64  `json:"room_charges"`
	ServiceCharges float64  `json:"service_charges"`
	Tax            float64  `json:"tax"`
	Total          float64  `json:"total"`
}

func NewInvoice(invoiceID string, payment *Payment) *Invoice {
	booking := payment.Booking

	var serviceCharges float64
	for _, service := range booking.Services() {
		serviceCharges += service.Price
	}

	roomCharges := booking.TotalCost - serviceCharges
	tax := (roomCharges + serviceCharges) * TaxRate

	return &Invoice{
		ID:             invoiceID,
		Payment:        payment,
		TaxRate:        TaxRate,
		RoomCharges:    roomCharges,
		ServiceCharges: serviceCharges,
		Tax:            tax,
		Total:          roomCharges + serviceCharges + tax,
	}
}

// Generate renders the line-item breakdown. The totals are the frozen ones;
// only the payment method and status are read at render time.
func (i *Invoice) Generate() string {
	booking := i.Payment.Booking

	lines := []string{
		fmt.Sprintf("Invoice ID: %s", i.ID),
		fmt.Sprintf("Guest: %s", booking.Guest.Name),
		fmt.Sprintf("Room: %s (%s)", booking.Room.Number, booking.Room.Type.TypeName),
		fmt.Sprintf("Dates: %s to %s", booking.CheckIn.Format(dateLayout), booking.CheckOut.Format(dateLayout)),
		"",
		"Charges:",
		fmt.Sprintf("  Room (%.2f/night x %d nights): $%.2f", booking.Room.Price, booking.Nights(), i.RoomCharges),
	}

	services := booking.Services()
	if len(services) > 0 {
		lines = append(lines, "  Additional Services:")
		for _, service := range services {
			lines = append(lines, fmt.Sprintf("    %s: $%.2f", service.Name, service.Price))
		}
	}

	lines = append(lines,
		"",
		"Summary:",
		fmt.Sprintf("  Room Charges: $%.2f", i.RoomCharges),
		fmt.Sprintf("  Service Charges: $%.2f", i.ServiceCharges),
		fmt.Sprintf("  Tax (%.1f%%): $%.2f", i.TaxRate*100, i.Tax), //nolint:gomnd
		fmt.Sprintf("  Total: $%.2f", i.Total),
		"",
		fmt.Sprintf("Payment Method: %s", i.Payment.Method),
		fmt.Sprintf("Payment Status: %s", i.Payment.Status),
	)

	return strings.Join(lines, "\n")
}

func (i *Invoice) String() string {
	return i.Generate()
}
