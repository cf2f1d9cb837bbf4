package hotel

import "fmt"

type Service struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

func NewService(serviceID, name string, price float64) (*Service, error) {
	inputErr := newInputError()

	if serviceID == "" {
		inputErr.addError("service_id", "provide a service id")
	}

	if price <= 0 {
		inputErr.addError("price", "price must be a positive number")
	}

	if inputErr.fieldsCount() > 0 {
		return nil, inputErr
	}

	return &Service{
		ID:        serviceID,
		Name:      name,
		Price:     price,
		Available: true,
	}, nil
}

func (s *Service) SetPrice(value float64) error {
	if value <= 0 {
		inputErr := newInputError()
		inputErr.addError("price", "price must be a positive number")

		return inputErr
	}

	s.Price = value

	return nil
}

func (s *Service) SetAvailability(available bool) {
	s.Available = available
}

func (s *Service) String() string {
	status := "Available"
	if !s.Available {
		status = "Unavailable"
	}

	return fmt.Sprintf("Service %s: %s ($%.2f) - %s", s.ID, s.Name, s.Price, status)
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestFulfilled RequestStatus = "Fulfilled"
	RequestCancelled RequestStatus = "Cancelled"
)

// ServiceRequest is created independently of any booking; it ties a guest to
// a catalog service.
type ServiceRequest struct {
	ID        string        `json:"id"`
	GuestID   string        `json:"guest_id"`
	ServiceID string        `json:"service_id"`
	Status    RequestStatus `json:"status"`
}

func NewServiceRequest(requestID string, guest *Guest, service *Service) *ServiceRequest {
	return &ServiceRequest{
		ID:        requestID,
		GuestID:   guest.ID,
		ServiceID: service.ID,
		Status:    RequestPending,
	}
}

// Fulfill marks the request fulfilled. There is no guard against calling it
// on an already settled request.
func (r *ServiceRequest) Fulfill() {
	r.Status = RequestFulfilled
}

func (r *ServiceRequest) Cancel() {
	r.Status = RequestCancelled
}
