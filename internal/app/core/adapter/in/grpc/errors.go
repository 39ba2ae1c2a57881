package grpc

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// ErrMissingOwner 請求沒有帶 x-owner-id
var ErrMissingOwner = errors.New("missing " + OwnerMetadataKey + " metadata")

// codeOf 領域錯誤分類對應的 gRPC 狀態碼
func codeOf(kind domain.ErrorKind) codes.Code {
	switch kind {
	case domain.KindNone:
		return codes.OK
	case domain.KindValidation:
		return codes.InvalidArgument
	case domain.KindDuplicateAccount:
		return codes.AlreadyExists
	case domain.KindInsufficientBalance, domain.KindEditingWindowExpired:
		return codes.FailedPrecondition
	case domain.KindNotFound:
		return codes.NotFound
	case domain.KindForbidden:
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}

// toStatus 將錯誤轉成 gRPC status，Internal 錯誤不外洩細節
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, ErrMissingOwner) {
		return status.Error(codes.Unauthenticated, err.Error())
	}
	code := codeOf(domain.KindOf(err))
	if code == codes.Internal {
		return status.Error(code, domain.ErrInternal.Error())
	}
	return status.Error(code, err.Error())
}

// KindFromStatus client 端將 gRPC 狀態碼還原成錯誤分類
//
// FailedPrecondition 同時代表餘額不足與超過修改期限，以訊息內容區分。
func KindFromStatus(err error) domain.ErrorKind {
	st, ok := status.FromError(err)
	if !ok {
		return domain.KindInternal
	}
	switch st.Code() {
	case codes.OK:
		return domain.KindNone
	case codes.InvalidArgument:
		return domain.KindValidation
	case codes.AlreadyExists:
		return domain.KindDuplicateAccount
	case codes.FailedPrecondition:
		if strings.Contains(st.Message(), domain.ErrEditingWindowExpired.Error()) {
			return domain.KindEditingWindowExpired
		}
		return domain.KindInsufficientBalance
	case codes.NotFound:
		return domain.KindNotFound
	case codes.PermissionDenied:
		return domain.KindForbidden
	default:
		return domain.KindInternal
	}
}
