package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

func TestPoolReusesConnection(t *testing.T) {
	p := NewPool(WithInterceptor(LoggingInterceptor(logger.Nop())))

	a, err := p.GetConnection("passthrough:///ledgerd:50051")
	require.NoError(t, err)
	b, err := p.GetConnection("passthrough:///ledgerd:50051")
	require.NoError(t, err)
	assert.Same(t, a, b)

	other, err := p.GetConnection("passthrough:///ledgerd:50052")
	require.NoError(t, err)
	assert.NotSame(t, a, other)

	require.NoError(t, p.Close())

	c, err := p.GetConnection("passthrough:///ledgerd:50051")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	require.NoError(t, p.Close())
}

func TestMetadataInterceptor(t *testing.T) {
	var got metadata.MD
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		got, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := MetadataInterceptor("x-owner-id", "alice")(context.Background(), "/svc/M", nil, nil, nil, invoker)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, got.Get("x-owner-id"))
}
