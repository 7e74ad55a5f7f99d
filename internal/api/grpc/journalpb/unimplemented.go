package journalpb

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// UnimplementedJournalServer can be embedded to have forward compatible implementations.
type UnimplementedJournalServer struct{}

func (UnimplementedJournalServer) GetCurrentReflection(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCurrentReflection not implemented")
}
func (UnimplementedJournalServer) GetCurrentReflectionIfExists(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCurrentReflectionIfExists not implemented")
}
func (UnimplementedJournalServer) SaveReflectionResponse(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveReflectionResponse not implemented")
}
func (UnimplementedJournalServer) ListReflections(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReflections not implemented")
}
func (UnimplementedJournalServer) GetReflection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReflection not implemented")
}
func (UnimplementedJournalServer) ListLifeAreas(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLifeAreas not implemented")
}
func (UnimplementedJournalServer) SaveLifeArea(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveLifeArea not implemented")
}
func (UnimplementedJournalServer) GetPatternAwareness(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPatternAwareness not implemented")
}
func (UnimplementedJournalServer) ExportJournal(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportJournal not implemented")
}
