// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: parser/v1/parser.proto

package parserv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ParserService_ParseNotification_FullMethodName = "/parser.v1.ParserService/ParseNotification"
	ParserService_EnqueueParse_FullMethodName      = "/parser.v1.ParserService/EnqueueParse"
	ParserService_GetParseRun_FullMethodName       = "/parser.v1.ParserService/GetParseRun"
	ParserService_ListParseRuns_FullMethodName     = "/parser.v1.ParserService/ListParseRuns"
)

// ParserServiceClient is the client API for ParserService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ParserServiceClient interface {
	// ParseNotification runs the full pipeline synchronously and returns the
	// terminal outcome.
	ParseNotification(ctx context.Context, in *ParseNotificationRequest, opts ...grpc.CallOption) (*ParseNotificationResponse, error)
	// EnqueueParse accepts the notification for asynchronous parsing.
	EnqueueParse(ctx context.Context, in *EnqueueParseRequest, opts ...grpc.CallOption) (*EnqueueParseResponse, error)
	GetParseRun(ctx context.Context, in *GetParseRunRequest, opts ...grpc.CallOption) (*GetParseRunResponse, error)
	ListParseRuns(ctx context.Context, in *ListParseRunsRequest, opts ...grpc.CallOption) (*ListParseRunsResponse, error)
}

type parserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewParserServiceClient(cc grpc.ClientConnInterface) ParserServiceClient {
	return &parserServiceClient{cc}
}

func (c *parserServiceClient) ParseNotification(ctx context.Context, in *ParseNotificationRequest, opts ...grpc.CallOption) (*ParseNotificationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseNotificationResponse)
	err := c.cc.Invoke(ctx, ParserService_ParseNotification_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserServiceClient) EnqueueParse(ctx context.Context, in *EnqueueParseRequest, opts ...grpc.CallOption) (*EnqueueParseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueParseResponse)
	err := c.cc.Invoke(ctx, ParserService_EnqueueParse_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserServiceClient) GetParseRun(ctx context.Context, in *GetParseRunRequest, opts ...grpc.CallOption) (*GetParseRunResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetParseRunResponse)
	err := c.cc.Invoke(ctx, ParserService_GetParseRun_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserServiceClient) ListParseRuns(ctx context.Context, in *ListParseRunsRequest, opts ...grpc.CallOption) (*ListParseRunsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListParseRunsResponse)
	err := c.cc.Invoke(ctx, ParserService_ListParseRuns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParserServiceServer is the server API for ParserService service.
// All implementations must embed UnimplementedParserServiceServer
// for forward compatibility.
type ParserServiceServer interface {
	// ParseNotification runs the full pipeline synchronously and returns the
	// terminal outcome.
	ParseNotification(context.Context, *ParseNotificationRequest) (*ParseNotificationResponse, error)
	// EnqueueParse accepts the notification for asynchronous parsing.
	EnqueueParse(context.Context, *EnqueueParseRequest) (*EnqueueParseResponse, error)
	GetParseRun(context.Context, *GetParseRunRequest) (*GetParseRunResponse, error)
	ListParseRuns(context.Context, *ListParseRunsRequest) (*ListParseRunsResponse, error)
	mustEmbedUnimplementedParserServiceServer()
}

// UnimplementedParserServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedParserServiceServer struct{}

func (UnimplementedParserServiceServer) ParseNotification(context.Context, *ParseNotificationRequest) (*ParseNotificationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseNotification not implemented")
}
func (UnimplementedParserServiceServer) EnqueueParse(context.Context, *EnqueueParseRequest) (*EnqueueParseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueParse not implemented")
}
func (UnimplementedParserServiceServer) GetParseRun(context.Context, *GetParseRunRequest) (*GetParseRunResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetParseRun not implemented")
}
func (UnimplementedParserServiceServer) ListParseRuns(context.Context, *ListParseRunsRequest) (*ListParseRunsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListParseRuns not implemented")
}
func (UnimplementedParserServiceServer) mustEmbedUnimplementedParserServiceServer() {}
func (UnimplementedParserServiceServer) testEmbeddedByValue()                       {}

// UnsafeParserServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ParserServiceServer will
// result in compilation errors.
type UnsafeParserServiceServer interface {
	mustEmbedUnimplementedParserServiceServer()
}

func RegisterParserServiceServer(s grpc.ServiceRegistrar, srv ParserServiceServer) {
	// If the following call pancis, it indicates UnimplementedParserServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ParserService_ServiceDesc, srv)
}

func _ParserService_ParseNotification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseNotificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServiceServer).ParseNotification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParserService_ParseNotification_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServiceServer).ParseNotification(ctx, req.(*ParseNotificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParserService_EnqueueParse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueParseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServiceServer).EnqueueParse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParserService_EnqueueParse_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServiceServer).EnqueueParse(ctx, req.(*EnqueueParseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParserService_GetParseRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetParseRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServiceServer).GetParseRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParserService_GetParseRun_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServiceServer).GetParseRun(ctx, req.(*GetParseRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParserService_ListParseRuns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListParseRunsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServiceServer).ListParseRuns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParserService_ListParseRuns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServiceServer).ListParseRuns(ctx, req.(*ListParseRunsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ParserService_ServiceDesc is the grpc.ServiceDesc for ParserService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ParserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "parser.v1.ParserService",
	HandlerType: (*ParserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseNotification",
			Handler:    _ParserService_ParseNotification_Handler,
		},
		{
			MethodName: "EnqueueParse",
			Handler:    _ParserService_EnqueueParse_Handler,
		},
		{
			MethodName: "GetParseRun",
			Handler:    _ParserService_GetParseRun_Handler,
		},
		{
			MethodName: "ListParseRuns",
			Handler:    _ParserService_ListParseRuns_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "parser/v1/parser.proto",
}
