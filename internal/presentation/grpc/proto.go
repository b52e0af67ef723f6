package grpc

// proto.go hand-writes the service descriptor for bib.obligation.v1.ObligationService.
// Messages are the application DTOs carried by the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
)

const serviceName = "bib.obligation.v1.ObligationService"

// Full method names, as seen by interceptors.
const (
	PreviewObligationMethod    = "/" + serviceName + "/PreviewObligation"
	ListUpcomingPaymentsMethod = "/" + serviceName + "/ListUpcomingPayments"
	ReviewMonthMethod          = "/" + serviceName + "/ReviewMonth"
)

type (
	PreviewObligationRequest     = dto.ObligationBlockRequest
	PreviewObligationResponse    = dto.ObligationBlockResponse
	ListUpcomingPaymentsRequest  = dto.UpcomingPaymentsRequest
	ListUpcomingPaymentsResponse = dto.UpcomingPaymentsResponse
	ReviewMonthRequest           = dto.MonthlyReviewRequest
	ReviewMonthResponse          = dto.ObligationReviewResponse
)

// ObligationServiceServer is the server API for ObligationService.
type ObligationServiceServer interface {
	PreviewObligation(context.Context, *PreviewObligationRequest) (*PreviewObligationResponse, error)
	ListUpcomingPayments(context.Context, *ListUpcomingPaymentsRequest) (*ListUpcomingPaymentsResponse, error)
	ReviewMonth(context.Context, *ReviewMonthRequest) (*ReviewMonthResponse, error)
	mustEmbedUnimplementedObligationServiceServer()
}

// UnimplementedObligationServiceServer provides forward-compatible default implementations.
type UnimplementedObligationServiceServer struct{}

func (UnimplementedObligationServiceServer) PreviewObligation(context.Context, *PreviewObligationRequest) (*PreviewObligationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewObligation not implemented")
}
func (UnimplementedObligationServiceServer) ListUpcomingPayments(context.Context, *ListUpcomingPaymentsRequest) (*ListUpcomingPaymentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUpcomingPayments not implemented")
}
func (UnimplementedObligationServiceServer) ReviewMonth(context.Context, *ReviewMonthRequest) (*ReviewMonthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewMonth not implemented")
}
func (UnimplementedObligationServiceServer) mustEmbedUnimplementedObligationServiceServer() {}

// RegisterObligationServiceServer registers srv with the gRPC server.
func RegisterObligationServiceServer(s grpclib.ServiceRegistrar, srv ObligationServiceServer) {
	s.RegisterService(&_ObligationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _ObligationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ObligationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PreviewObligation", Handler: _ObligationService_PreviewObligation_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListUpcomingPayments", Handler: _ObligationService_ListUpcomingPayments_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ReviewMonth", Handler: _ObligationService_ReviewMonth_Handler},                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _ObligationService_PreviewObligation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(PreviewObligationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObligationServiceServer).PreviewObligation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: PreviewObligationMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ObligationServiceServer).PreviewObligation(ctx, req.(*PreviewObligationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ObligationService_ListUpcomingPayments_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(ListUpcomingPaymentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObligationServiceServer).ListUpcomingPayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListUpcomingPaymentsMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ObligationServiceServer).ListUpcomingPayments(ctx, req.(*ListUpcomingPaymentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ObligationService_ReviewMonth_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(ReviewMonthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObligationServiceServer).ReviewMonth(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewMonthMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ObligationServiceServer).ReviewMonth(ctx, req.(*ReviewMonthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ObligationServiceClient is the client API for ObligationService. Calls
// always use the JSON codec.
type ObligationServiceClient struct {
	cc grpclib.ClientConnInterface
}

func NewObligationServiceClient(cc grpclib.ClientConnInterface) *ObligationServiceClient {
	return &ObligationServiceClient{cc: cc}
}

func (c *ObligationServiceClient) PreviewObligation(ctx context.Context, in *PreviewObligationRequest, opts ...grpclib.CallOption) (*PreviewObligationResponse, error) {
	out := new(PreviewObligationResponse)
	if err := c.invoke(ctx, PreviewObligationMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ObligationServiceClient) ListUpcomingPayments(ctx context.Context, in *ListUpcomingPaymentsRequest, opts ...grpclib.CallOption) (*ListUpcomingPaymentsResponse, error) {
	out := new(ListUpcomingPaymentsResponse)
	if err := c.invoke(ctx, ListUpcomingPaymentsMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ObligationServiceClient) ReviewMonth(ctx context.Context, in *ReviewMonthRequest, opts ...grpclib.CallOption) (*ReviewMonthResponse, error) {
	out := new(ReviewMonthResponse)
	if err := c.invoke(ctx, ReviewMonthMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ObligationServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpclib.CallOption) error {
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}
