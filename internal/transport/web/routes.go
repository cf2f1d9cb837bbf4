package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avstrong/hotelier/internal/hotel"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return date, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if inputErr := hotel.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if availabilityErr := hotel.IsAvailabilityError(err); availabilityErr != nil {
		s.writeJSON(w, http.StatusPreconditionFailed, availabilityErr.Fields())

		return
	}

	switch {
	case errors.Is(err, hotel.ErrRecordNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, hotel.ErrInvalidStatus),
		errors.Is(err, hotel.ErrInsufficientPoints),
		errors.Is(err, hotel.ErrServiceUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		s.l.LogErrorf("Request failed: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) findRoomsHandler(w http.ResponseWriter, r *http.Request) {
	checkIn, err := parseDate(r.URL.Query().Get("check_in"))
	if err != nil {
		http.Error(w, "provide check_in as YYYY-MM-DD", http.StatusBadRequest)

		return
	}

	checkOut, err := parseDate(r.URL.Query().Get("check_out"))
	if err != nil {
		http.Error(w, "provide check_out as YYYY-MM-DD", http.StatusBadRequest)

		return
	}

	rooms, err := s.manager.FindAvailableRooms(r.Context(), checkIn, checkOut, r.URL.Query().Get("type"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	if rooms == nil {
		rooms = []*hotel.Room{}
	}

	s.writeJSON(w, http.StatusOK, rooms)
}

type bookingRequest struct {
	GuestID    string `json:"guest_id"`
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		http.Error(w, "provide check_in as YYYY-MM-DD", http.StatusBadRequest)

		return
	}

	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		http.Error(w, "provide check_out as YYYY-MM-DD", http.StatusBadRequest)

		return
	}

	booking, err := s.manager.MakeBooking(r.Context(), hotel.MakeBookingInput{
		GuestID:    req.GuestID,
		RoomNumber: req.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) guestBookingsHandler(w http.ResponseWriter, r *http.Request) {
	guestID := r.URL.Query().Get("guest_id")
	if guestID == "" {
		http.Error(w, "provide guest_id", http.StatusBadRequest)

		return
	}

	bookings, err := s.manager.GetGuestBookings(r.Context(), guestID)
	if err != nil {
		s.writeError(w, err)

		return
	}

	if bookings == nil {
		bookings = []*hotel.Booking{}
	}

	s.writeJSON(w, http.StatusOK, bookings)
}

type addServiceRequest struct {
	ServiceID string `json:"service_id"`
}

func (s *Server) addServiceHandler(w http.ResponseWriter, r *http.Request) {
	var req addServiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	booking, err := s.manager.AddServiceToBooking(r.Context(), r.PathValue("bookingID"), req.ServiceID)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, booking)
}

func (s *Server) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")

	if err := s.manager.CancelBooking(r.Context(), bookingID); err != nil {
		s.writeError(w, err)

		return
	}

	booking, err := s.manager.GetBooking(r.Context(), bookingID)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, booking)
}

type paymentRequest struct {
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

func (s *Server) processPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	payment, err := s.manager.ProcessPayment(r.Context(), hotel.ProcessPaymentInput{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    req.Method,
	})
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, payment)
}

type invoiceResponse struct {
	Invoice  *hotel.Invoice `json:"invoice"`
	Rendered string         `json:"rendered"`
}

func (s *Server) getInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	invoice, err := s.manager.GetInvoice(r.Context(), r.PathValue("bookingID"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, invoiceResponse{Invoice: invoice, Rendered: invoice.Generate()})
}

type serviceRequestBody struct {
	GuestID   string `json:"guest_id"`
	ServiceID string `json:"service_id"`
}

func (s *Server) createServiceRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req serviceRequestBody

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	request, err := s.manager.CreateServiceRequest(r.Context(), req.GuestID, req.ServiceID)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, request)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern string, handler http.HandlerFunc) {
		r.Handle(pattern, s.applyMiddlewares(handler, s.loggerMiddleware(), s.recoverMiddleware()))
	}

	handle("GET /api/rooms/v1", s.findRoomsHandler)
	handle("POST /api/bookings/v1", s.createBookingHandler)
	handle("GET /api/bookings/v1", s.guestBookingsHandler)
	handle("POST /api/bookings/v1/{bookingID}/services", s.addServiceHandler)
	handle("POST /api/bookings/v1/{bookingID}/cancel", s.cancelBookingHandler)
	handle("POST /api/payments/v1", s.processPaymentHandler)
	handle("GET /api/invoices/v1/{bookingID}", s.getInvoiceHandler)
	handle("POST /api/requests/v1", s.createServiceRequestHandler)
	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
}
