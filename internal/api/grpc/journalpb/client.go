package journalpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// JournalClient is the client API for the Journal service.
type JournalClient struct {
	cc grpc.ClientConnInterface
}

func NewJournalClient(cc grpc.ClientConnInterface) *JournalClient {
	return &JournalClient{cc: cc}
}

func (c *JournalClient) invoke(ctx context.Context, method string, in proto.Message, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *JournalClient) GetCurrentReflection(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_GetCurrentReflection_FullMethodName, in, opts)
}

func (c *JournalClient) GetCurrentReflectionIfExists(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_GetCurrentReflectionIfExists_FullMethodName, in, opts)
}

func (c *JournalClient) SaveReflectionResponse(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_SaveReflectionResponse_FullMethodName, in, opts)
}

func (c *JournalClient) ListReflections(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_ListReflections_FullMethodName, in, opts)
}

func (c *JournalClient) GetReflection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_GetReflection_FullMethodName, in, opts)
}

func (c *JournalClient) ListLifeAreas(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_ListLifeAreas_FullMethodName, in, opts)
}

func (c *JournalClient) SaveLifeArea(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_SaveLifeArea_FullMethodName, in, opts)
}

func (c *JournalClient) GetPatternAwareness(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_GetPatternAwareness_FullMethodName, in, opts)
}

func (c *JournalClient) ExportJournal(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Journal_ExportJournal_FullMethodName, in, opts)
}
