package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const AppointmentsServiceName = "appointly.v1.AppointmentsService"

const (
	MethodBookAppointment           = "/" + AppointmentsServiceName + "/BookAppointment"
	MethodListProviderDay           = "/" + AppointmentsServiceName + "/ListProviderDay"
	MethodListRequesterAppointments = "/" + AppointmentsServiceName + "/ListRequesterAppointments"
	MethodCancelAppointment         = "/" + AppointmentsServiceName + "/CancelAppointment"
	MethodChangeAppointmentStatus   = "/" + AppointmentsServiceName + "/ChangeAppointmentStatus"
	MethodRegisterParty             = "/" + AppointmentsServiceName + "/RegisterParty"
	MethodGetParty                  = "/" + AppointmentsServiceName + "/GetParty"
)

type AppointmentsServiceServer interface {
	BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error)
	ListProviderDay(context.Context, *ListProviderDayRequest) (*ListAppointmentsResponse, error)
	ListRequesterAppointments(context.Context, *ListRequesterAppointmentsRequest) (*ListAppointmentsResponse, error)
	CancelAppointment(context.Context, *CancelAppointmentRequest) (*CancelAppointmentResponse, error)
	ChangeAppointmentStatus(context.Context, *ChangeAppointmentStatusRequest) (*ChangeAppointmentStatusResponse, error)
	RegisterParty(context.Context, *RegisterPartyRequest) (*PartyResponse, error)
	GetParty(context.Context, *GetPartyRequest) (*PartyResponse, error)
}

func RegisterAppointmentsServiceServer(s grpc.ServiceRegistrar, srv AppointmentsServiceServer) {
	s.RegisterService(&appointmentsServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(AppointmentsServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AppointmentsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AppointmentsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var appointmentsServiceDesc = grpc.ServiceDesc{
	ServiceName: AppointmentsServiceName,
	HandlerType: (*AppointmentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BookAppointment", Handler: unaryHandler(MethodBookAppointment, AppointmentsServiceServer.BookAppointment)},
		{MethodName: "ListProviderDay", Handler: unaryHandler(MethodListProviderDay, AppointmentsServiceServer.ListProviderDay)},
		{MethodName: "ListRequesterAppointments", Handler: unaryHandler(MethodListRequesterAppointments, AppointmentsServiceServer.ListRequesterAppointments)},
		{MethodName: "CancelAppointment", Handler: unaryHandler(MethodCancelAppointment, AppointmentsServiceServer.CancelAppointment)},
		{MethodName: "ChangeAppointmentStatus", Handler: unaryHandler(MethodChangeAppointmentStatus, AppointmentsServiceServer.ChangeAppointmentStatus)},
		{MethodName: "RegisterParty", Handler: unaryHandler(MethodRegisterParty, AppointmentsServiceServer.RegisterParty)},
		{MethodName: "GetParty", Handler: unaryHandler(MethodGetParty, AppointmentsServiceServer.GetParty)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "appointly/v1/appointments.proto",
}

// AppointmentsServiceClient calls the service with the JSON codec.
type AppointmentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAppointmentsServiceClient(cc grpc.ClientConnInterface) *AppointmentsServiceClient {
	return &AppointmentsServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AppointmentsServiceClient) BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*BookAppointmentResponse, error) {
	return invoke[BookAppointmentResponse](ctx, c.cc, MethodBookAppointment, in, opts)
}

func (c *AppointmentsServiceClient) ListProviderDay(ctx context.Context, in *ListProviderDayRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, MethodListProviderDay, in, opts)
}

func (c *AppointmentsServiceClient) ListRequesterAppointments(ctx context.Context, in *ListRequesterAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, MethodListRequesterAppointments, in, opts)
}

func (c *AppointmentsServiceClient) CancelAppointment(ctx context.Context, in *CancelAppointmentRequest, opts ...grpc.CallOption) (*CancelAppointmentResponse, error) {
	return invoke[CancelAppointmentResponse](ctx, c.cc, MethodCancelAppointment, in, opts)
}

func (c *AppointmentsServiceClient) ChangeAppointmentStatus(ctx context.Context, in *ChangeAppointmentStatusRequest, opts ...grpc.CallOption) (*ChangeAppointmentStatusResponse, error) {
	return invoke[ChangeAppointmentStatusResponse](ctx, c.cc, MethodChangeAppointmentStatus, in, opts)
}

func (c *AppointmentsServiceClient) RegisterParty(ctx context.Context, in *RegisterPartyRequest, opts ...grpc.CallOption) (*PartyResponse, error) {
	return invoke[PartyResponse](ctx, c.cc, MethodRegisterParty, in, opts)
}

func (c *AppointmentsServiceClient) GetParty(ctx context.Context, in *GetPartyRequest, opts ...grpc.CallOption) (*PartyResponse, error) {
	return invoke[PartyResponse](ctx, c.cc, MethodGetParty, in, opts)
}
