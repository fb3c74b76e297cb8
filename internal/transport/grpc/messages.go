package grpc

import "time"

type Appointment struct {
	ID          string     `json:"id"`
	ProviderID  string     `json:"provider_id"`
	RequesterID string     `json:"requester_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      string     `json:"status"`
	CancelledBy string     `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Party struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookAppointmentRequest struct {
	ProviderID  string     `json:"provider_id"`
	RequesterID string     `json:"requester_id"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	// Status is optional; BOOKED when empty.
	Status string `json:"status,omitempty"`
}

type BookAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type ListProviderDayRequest struct {
	ProviderID string `json:"provider_id"`
	// Date is a calendar day formatted as YYYY-MM-DD.
	Date string `json:"date"`
}

type ListRequesterAppointmentsRequest struct {
	RequesterID string `json:"requester_id"`
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments"`
}

type CancelAppointmentRequest struct {
	AppointmentID string `json:"appointment_id"`
	CancelledBy   string `json:"cancelled_by,omitempty"`
}

type CancelAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type ChangeAppointmentStatusRequest struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type ChangeAppointmentStatusResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type RegisterPartyRequest struct {
	ID          string `json:"id,omitempty"`
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
}

type GetPartyRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type PartyResponse struct {
	Party *Party `json:"party"`
}
