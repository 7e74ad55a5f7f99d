package router

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	grpcctx "github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/context"
	"github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/journalpb"
	"github.com/NapAndCommit/still-figuring-it-out/internal/mocks"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
	"github.com/NapAndCommit/still-figuring-it-out/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	ctxMgr := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	r := New(Services{}, mocks.NewTokenService(t), ctxMgr, lg)
	s := r.Register()
	if s == nil {
		t.Fatalf("expected non-nil grpc server")
	}

	info := s.GetServiceInfo()
	assert.Contains(t, info, journalpb.ServiceName)
	assert.Contains(t, info, grpc_health_v1.Health_ServiceDesc.ServiceName)
	assert.Len(t, info[journalpb.ServiceName].Methods, 9)
}

func dial(t *testing.T, s *grpc.Server) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRouter_AuthenticatedCall(t *testing.T) {
	reflections := mocks.NewReflectionService(t)
	tokens := mocks.NewTokenService(t)

	tokens.On("GetUserID", mock.Anything, "good-token").Return("user-42", nil)
	reflections.On("FetchCurrent", mock.Anything, "user-42").Return(model.WeeklyReflection{}, false)

	r := New(Services{Reflections: reflections}, tokens, grpcctx.NewManager(), testutil.MakeNoopLogger())
	client := journalpb.NewJournalClient(dial(t, r.Register()))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer good-token")
	resp, err := client.GetCurrentReflectionIfExists(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	v, ok := resp.AsMap()["reflection"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	r := New(Services{}, mocks.NewTokenService(t), grpcctx.NewManager(), testutil.MakeNoopLogger())
	client := journalpb.NewJournalClient(dial(t, r.Register()))

	_, err := client.ListReflections(context.Background(), &emptypb.Empty{})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())
}

func TestRouter_RejectsSpoofedUserMetadata(t *testing.T) {
	tokens := mocks.NewTokenService(t)
	tokens.On("GetUserID", mock.Anything, "bad-token").Return("", assert.AnError)

	r := New(Services{}, tokens, grpcctx.NewManager(), testutil.MakeNoopLogger())
	client := journalpb.NewJournalClient(dial(t, r.Register()))

	ctx := metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer bad-token",
		"user_id", "someone-else")
	_, err := client.ExportJournal(ctx, &emptypb.Empty{})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
}

func TestRouter_HealthSkipsAuth(t *testing.T) {
	r := New(Services{}, mocks.NewTokenService(t), grpcctx.NewManager(), testutil.MakeNoopLogger())
	conn := dial(t, r.Register())

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{
		Service: journalpb.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}
