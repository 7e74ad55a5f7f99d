// Package journalpb declares the journal.v1.Journal gRPC service. Requests and
// responses are protobuf well-known types: methods without input take
// google.protobuf.Empty, everything else is a google.protobuf.Struct.
package journalpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "journal.v1.Journal"

const (
	Journal_GetCurrentReflection_FullMethodName         = "/journal.v1.Journal/GetCurrentReflection"
	Journal_GetCurrentReflectionIfExists_FullMethodName = "/journal.v1.Journal/GetCurrentReflectionIfExists"
	Journal_SaveReflectionResponse_FullMethodName       = "/journal.v1.Journal/SaveReflectionResponse"
	Journal_ListReflections_FullMethodName              = "/journal.v1.Journal/ListReflections"
	Journal_GetReflection_FullMethodName                = "/journal.v1.Journal/GetReflection"
	Journal_ListLifeAreas_FullMethodName                = "/journal.v1.Journal/ListLifeAreas"
	Journal_SaveLifeArea_FullMethodName                 = "/journal.v1.Journal/SaveLifeArea"
	Journal_GetPatternAwareness_FullMethodName          = "/journal.v1.Journal/GetPatternAwareness"
	Journal_ExportJournal_FullMethodName                = "/journal.v1.Journal/ExportJournal"
)

// JournalServer is the server API for the Journal service.
type JournalServer interface {
	GetCurrentReflection(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetCurrentReflectionIfExists(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SaveReflectionResponse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListReflections(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetReflection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListLifeAreas(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SaveLifeArea(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPatternAwareness(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ExportJournal(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterJournalServer registers srv on s.
func RegisterJournalServer(s grpc.ServiceRegistrar, srv JournalServer) {
	s.RegisterService(&Journal_ServiceDesc, srv)
}

func unaryHandler[Req any](
	fullMethod string,
	newReq func() Req,
	call func(srv JournalServer, ctx context.Context, req Req) (*structpb.Struct, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JournalServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(JournalServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func emptyRequest() *emptypb.Empty { return new(emptypb.Empty) }

func structRequest() *structpb.Struct { return new(structpb.Struct) }

// Journal_ServiceDesc is the grpc.ServiceDesc for the Journal service.
var Journal_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JournalServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCurrentReflection",
			Handler: unaryHandler(Journal_GetCurrentReflection_FullMethodName, emptyRequest,
				func(srv JournalServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return srv.GetCurrentReflection(ctx, in)
				}),
		},
		{
			MethodName: "GetCurrentReflectionIfExists",
			Handler: unaryHandler(Journal_GetCurrentReflectionIfExists_FullMethodName, emptyRequest,
				func(srv JournalServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return srv.GetCurrentReflectionIfExists(ctx, in)
				}),
		},
		{
			MethodName: "SaveReflectionResponse",
			Handler: unaryHandler(Journal_SaveReflectionResponse_FullMethodName, structRequest,
				func(srv JournalServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.SaveReflectionResponse(ctx, in)
				}),
		},
		{
			MethodName: "ListReflections",
			Handler: unaryHandler(Journal_ListReflections_FullMethodName, emptyRequest,
				func(srv JournalServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return srv.ListReflections(ctx, in)
				}),
		},
		{
			MethodName: "GetReflection",
			Handler: unaryHandler(Journal_GetReflection_FullMethodName, structRequest,
				func(srv JournalServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.GetReflection(ctx, in)
				}),
		},
		{
			MethodName: "ListLifeAreas",
			Handler: unaryHandler(Journal_ListLifeAreas_FullMethodName, emptyRequest,
				func(srv JournalServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return srv.ListLifeAreas(ctx, in)
				}),
		},
		{
			MethodName: "SaveLifeArea",
			Handler: unaryHandler(Journal_SaveLifeArea_FullMethodName, structRequest,
				func(srv JournalServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.SaveLifeArea(ctx, in)
				}),
		},
		{
			MethodName: "GetPatternAwareness",
			Handler: unaryHandler(Journal_GetPatternAwareness_FullMethodName, emptyRequest,
				func(srv JournalServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return srv.GetPatternAwareness(ctx, in)
				}),
		},
		{
			MethodName: "ExportJournal",
			Handler: unaryHandler(Journal_ExportJournal_FullMethodName, emptyRequest,
				func(srv JournalServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return srv.ExportJournal(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "journal/v1/journal.proto",
}
