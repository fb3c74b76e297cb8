package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"appointly/backend/internal/domain"
	"appointly/backend/internal/service/appointments"
	"appointly/backend/internal/service/parties"
	"appointly/backend/internal/store"
)

type AppointmentsServer struct {
	appts   appointmentsService
	parties partiesService
	log     *slog.Logger
}

type appointmentsService interface {
	Book(ctx context.Context, in *appointments.BookInput) (domain.Appointment, error)
	ListForProviderOnDate(ctx context.Context, providerID string, date domain.Date) ([]domain.Appointment, error)
	ListForRequester(ctx context.Context, requesterID string) ([]domain.Appointment, error)
	Cancel(ctx context.Context, appointmentID uuid.UUID, cancelledBy string) (domain.Appointment, error)
	ChangeStatus(ctx context.Context, appointmentID uuid.UUID, label string) (domain.Appointment, error)
}

type partiesService interface {
	Register(ctx context.Context, in parties.RegisterInput) (domain.Party, error)
	Get(ctx context.Context, kind string, id string) (domain.Party, error)
}

func NewAppointmentsServer(appts appointmentsService, partySvc partiesService, log *slog.Logger) *AppointmentsServer {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsServer{
		appts:   appts,
		parties: partySvc,
		log:     log.With(slog.String("component", "grpc.appointments")),
	}
}

func (s *AppointmentsServer) rpcLogger(ctx context.Context, rpc string) *slog.Logger {
	log := s.log.With(slog.String("rpc", rpc))
	if id := RequestIDFromContext(ctx); id != "" {
		log = log.With(slog.String("request_id", id))
	}
	return log
}

// errorStatus maps service errors onto gRPC codes. Anything unrecognised is
// logged and reported as Internal without leaking the cause.
func errorStatus(log *slog.Logger, err error, conflictMsg string, attrs ...any) error {
	var (
		vErr  *appointments.ValidationError
		pvErr *parties.ValidationError
		nfErr *appointments.NotFoundError
		trErr *appointments.TransitionError
	)
	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", append([]any{slog.Any("err", err)}, attrs...)...)
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.As(err, &pvErr):
		log.Warn("invalid request", append([]any{slog.Any("err", err)}, attrs...)...)
		return status.Error(codes.InvalidArgument, pvErr.Error())
	case errors.As(err, &nfErr):
		log.Info("not found", append([]any{slog.String("resource", nfErr.Resource), slog.String("id", nfErr.ID)}, attrs...)...)
		return status.Error(codes.NotFound, nfErr.Error())
	case errors.Is(err, store.ErrNotFound):
		log.Info("not found", attrs...)
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, store.ErrConflict):
		log.Info("conflict", attrs...)
		return status.Error(codes.AlreadyExists, conflictMsg)
	case errors.As(err, &trErr):
		log.Info("illegal status transition", append([]any{slog.String("from", string(trErr.From)), slog.String("to", string(trErr.To))}, attrs...)...)
		return status.Error(codes.FailedPrecondition, trErr.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("request deadline exceeded", attrs...)
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		log.Info("request cancelled", attrs...)
		return status.Error(codes.Canceled, "request cancelled")
	default:
		log.Error("request failed", append([]any{slog.Any("err", err)}, attrs...)...)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *AppointmentsServer) BookAppointment(ctx context.Context, req *BookAppointmentRequest) (*BookAppointmentResponse, error) {
	log := s.rpcLogger(ctx, "BookAppointment")

	var in *appointments.BookInput
	if req != nil {
		in = &appointments.BookInput{
			ProviderID:  req.ProviderID,
			RequesterID: req.RequesterID,
			Status:      req.Status,
		}
		if req.ScheduledAt != nil {
			in.ScheduledAt = *req.ScheduledAt
		}
	}

	appt, err := s.appts.Book(ctx, in)
	if err != nil {
		attrs := []any{}
		if in != nil {
			attrs = append(attrs,
				slog.String("provider_id", in.ProviderID),
				slog.String("requester_id", in.RequesterID),
				slog.Time("scheduled_at", in.ScheduledAt),
			)
		}
		return nil, errorStatus(log, err, "provider already has an appointment at that time", attrs...)
	}

	log.Info(
		"appointment booked",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID),
		slog.String("requester_id", appt.RequesterID),
		slog.Time("scheduled_at", appt.ScheduledAt),
		slog.String("status", string(appt.Status)),
	)

	return &BookAppointmentResponse{Appointment: toWireAppointment(appt)}, nil
}

func (s *AppointmentsServer) ListProviderDay(ctx context.Context, req *ListProviderDayRequest) (*ListAppointmentsResponse, error) {
	log := s.rpcLogger(ctx, "ListProviderDay")

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var date domain.Date
	if strings.TrimSpace(req.Date) != "" {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("date", req.Date))
			return nil, status.Error(codes.InvalidArgument, "date must be formatted as YYYY-MM-DD")
		}
		date = d
	}

	appts, err := s.appts.ListForProviderOnDate(ctx, req.ProviderID, date)
	if err != nil {
		return nil, errorStatus(log, err, "", slog.String("provider_id", req.ProviderID), slog.String("date", req.Date))
	}

	log.Debug(
		"provider day listed",
		slog.String("provider_id", req.ProviderID),
		slog.String("date", date.String()),
		slog.Int("count", len(appts)),
	)

	return &ListAppointmentsResponse{Appointments: toWireAppointments(appts)}, nil
}

func (s *AppointmentsServer) ListRequesterAppointments(ctx context.Context, req *ListRequesterAppointmentsRequest) (*ListAppointmentsResponse, error) {
	log := s.rpcLogger(ctx, "ListRequesterAppointments")

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	appts, err := s.appts.ListForRequester(ctx, req.RequesterID)
	if err != nil {
		return nil, errorStatus(log, err, "", slog.String("requester_id", req.RequesterID))
	}

	log.Debug("requester appointments listed", slog.String("requester_id", req.RequesterID), slog.Int("count", len(appts)))
	return &ListAppointmentsResponse{Appointments: toWireAppointments(appts)}, nil
}

func (s *AppointmentsServer) CancelAppointment(ctx context.Context, req *CancelAppointmentRequest) (*CancelAppointmentResponse, error) {
	log := s.rpcLogger(ctx, "CancelAppointment")

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentID)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("appointment_id", req.AppointmentID))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := s.appts.Cancel(ctx, id, req.CancelledBy)
	if err != nil {
		return nil, errorStatus(log, err, "", slog.String("appointment_id", req.AppointmentID))
	}

	log.Info(
		"appointment cancelled",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID),
		slog.Time("scheduled_at", appt.ScheduledAt),
	)
	return &CancelAppointmentResponse{Appointment: toWireAppointment(appt)}, nil
}

func (s *AppointmentsServer) ChangeAppointmentStatus(ctx context.Context, req *ChangeAppointmentStatusRequest) (*ChangeAppointmentStatusResponse, error) {
	log := s.rpcLogger(ctx, "ChangeAppointmentStatus")

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseAppointmentID(req.AppointmentID)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("appointment_id", req.AppointmentID))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := s.appts.ChangeStatus(ctx, id, req.Status)
	if err != nil {
		return nil, errorStatus(log, err, "", slog.String("appointment_id", req.AppointmentID), slog.String("status", req.Status))
	}

	log.Info("appointment status changed", slog.String("appointment_id", appt.ID.String()), slog.String("status", string(appt.Status)))
	return &ChangeAppointmentStatusResponse{Appointment: toWireAppointment(appt)}, nil
}

func (s *AppointmentsServer) RegisterParty(ctx context.Context, req *RegisterPartyRequest) (*PartyResponse, error) {
	log := s.rpcLogger(ctx, "RegisterParty")

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	p, err := s.parties.Register(ctx, parties.RegisterInput{
		ID:          req.ID,
		Kind:        req.Kind,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return nil, errorStatus(log, err, "party already exists", slog.String("party_id", req.ID), slog.String("kind", req.Kind))
	}

	log.Info("party registered", slog.String("party_id", p.ID), slog.String("kind", string(p.Kind)))
	return &PartyResponse{Party: toWireParty(p)}, nil
}

func (s *AppointmentsServer) GetParty(ctx context.Context, req *GetPartyRequest) (*PartyResponse, error) {
	log := s.rpcLogger(ctx, "GetParty")

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	p, err := s.parties.Get(ctx, req.Kind, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("party not found", slog.String("party_id", req.ID), slog.String("kind", req.Kind))
			return nil, status.Error(codes.NotFound, "party not found")
		}
		return nil, errorStatus(log, err, "", slog.String("party_id", req.ID), slog.String("kind", req.Kind))
	}

	return &PartyResponse{Party: toWireParty(p)}, nil
}

// parseAppointmentID treats a blank id as uuid.Nil so the service reports it as missing.
func parseAppointmentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func toWireAppointment(a domain.Appointment) *Appointment {
	out := &Appointment{
		ID:          a.ID.String(),
		ProviderID:  a.ProviderID,
		RequesterID: a.RequesterID,
		ScheduledAt: a.ScheduledAt,
		Status:      string(a.Status),
		CancelledAt: a.CancelledAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.CancelledBy != nil {
		out.CancelledBy = *a.CancelledBy
	}
	return out
}

func toWireAppointments(appts []domain.Appointment) []*Appointment {
	out := make([]*Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toWireAppointment(a))
	}
	return out
}

func toWireParty(p domain.Party) *Party {
	return &Party{
		ID:          p.ID,
		Kind:        string(p.Kind),
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	}
}

var _ AppointmentsServiceServer = (*AppointmentsServer)(nil)
