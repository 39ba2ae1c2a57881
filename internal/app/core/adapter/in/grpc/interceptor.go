package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// LoggingInterceptor 記錄每個 RPC 的 method、owner、耗時與狀態碼
func LoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	log = log.WithComponent("grpc")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		owner, _ := ownerFrom(ctx)
		args := []any{
			"method", info.FullMethod,
			logger.FieldOwner, owner,
			logger.FieldDuration, time.Since(start).Milliseconds(),
			"code", status.Code(err).String(),
		}
		if err != nil {
			log.WarnContext(ctx, "rpc failed", append(args, logger.FieldError, err)...)
			return resp, err
		}
		log.InfoContext(ctx, "rpc", args...)
		return resp, nil
	}
}
