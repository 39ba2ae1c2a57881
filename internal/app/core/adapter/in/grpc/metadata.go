package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

// OwnerMetadataKey 呼叫者身分，由上游驗證後帶入
const OwnerMetadataKey = "x-owner-id"

// WithOwner 在 outgoing context 帶入呼叫者身分
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, OwnerMetadataKey, ownerID)
}

// ownerFrom 從 incoming metadata 取得 owner
func ownerFrom(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrMissingOwner
	}
	values := md.Get(OwnerMetadataKey)
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", ErrMissingOwner
	}
	return strings.TrimSpace(values[0]), nil
}
