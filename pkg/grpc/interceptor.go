package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// LoggingInterceptor 在 client 端記錄每次呼叫的 method、耗時與狀態碼
func LoggingInterceptor(log *logger.Logger) grpc.UnaryClientInterceptor {
	log = log.WithComponent("grpc-client")
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		log.DebugContext(ctx, "rpc",
			"method", method,
			"target", cc.Target(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
			"code", status.Code(err).String())
		return err
	}
}

// MetadataInterceptor 每次呼叫都附加固定的 metadata (例如呼叫者身分)
func MetadataInterceptor(kv ...string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if len(kv) > 0 {
			ctx = metadata.AppendToOutgoingContext(ctx, kv...)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
