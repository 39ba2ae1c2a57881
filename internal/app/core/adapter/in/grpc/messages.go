package grpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-cash-ledger/proto"
)

// 金額在傳輸時一律使用 decimal 字串 (例如 "1250.5")

func toAccountProto(a *domain.Account) *pb.Account {
	return &pb.Account{
		OwnerId:   a.OwnerID,
		Name:      string(a.Name),
		Balance:   a.Balance.String(),
		CreatedAt: timestamppb.New(a.CreatedAt),
		UpdatedAt: timestamppb.New(a.UpdatedAt),
	}
}

func toTransactionProto(t *domain.Transaction) *pb.Transaction {
	out := &pb.Transaction{
		Id:              t.ID.String(),
		OwnerId:         t.OwnerID,
		Type:            string(t.Type),
		Amount:          t.Amount.String(),
		Category:        t.Category,
		Description:     t.Description,
		Division:        string(t.Division),
		Account:         string(t.Account),
		TransactionDate: timestamppb.New(t.TransactionDate),
		CreatedAt:       timestamppb.New(t.CreatedAt),
	}
	if t.FromAccount != nil {
		out.FromAccount = string(*t.FromAccount)
	}
	if t.ToAccount != nil {
		out.ToAccount = string(*t.ToAccount)
	}
	return out
}

// timeFrom 驗證並轉換 Timestamp，nil 視為未提供
func timeFrom(field string, ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, domain.Invalid(field, "not a valid timestamp")
	}
	t := ts.AsTime()
	return &t, nil
}

func toRecordInput(ownerID string, req *pb.RecordTransactionRequest) (usecase.RecordInput, error) {
	typ, err := domain.ParseTransactionType(req.GetType())
	if err != nil {
		return usecase.RecordInput{}, err
	}
	amount, err := domain.ParseMoney(req.GetAmount())
	if err != nil {
		return usecase.RecordInput{}, err
	}
	division, err := domain.ParseDivision(req.GetDivision())
	if err != nil {
		return usecase.RecordInput{}, err
	}
	account, err := domain.ParseAccountName("account", req.GetAccount())
	if err != nil {
		return usecase.RecordInput{}, err
	}
	date, err := timeFrom("transactionDate", req.GetTransactionDate())
	if err != nil {
		return usecase.RecordInput{}, err
	}
	if date == nil {
		return usecase.RecordInput{}, domain.Invalid("transactionDate", "is required")
	}
	return usecase.RecordInput{
		OwnerID:         ownerID,
		Type:            typ,
		Amount:          amount,
		Category:        req.GetCategory(),
		Description:     req.GetDescription(),
		Division:        division,
		Account:         account,
		TransactionDate: *date,
	}, nil
}

func stringFrom(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	s := v.GetValue()
	return &s
}

func toPatch(req *pb.EditTransactionRequest) (domain.TransactionPatch, error) {
	var patch domain.TransactionPatch
	if req.GetAmount() != nil {
		amount, err := domain.ParseMoney(req.GetAmount().GetValue())
		if err != nil {
			return patch, err
		}
		patch.Amount = &amount
	}
	patch.Category = stringFrom(req.GetCategory())
	patch.Description = stringFrom(req.GetDescription())
	if req.GetDivision() != nil {
		division, err := domain.ParseDivision(req.GetDivision().GetValue())
		if err != nil {
			return patch, err
		}
		patch.Division = &division
	}
	if req.GetAccount() != nil {
		account, err := domain.ParseAccountName("account", req.GetAccount().GetValue())
		if err != nil {
			return patch, err
		}
		patch.Account = &account
	}
	date, err := timeFrom("transactionDate", req.GetTransactionDate())
	if err != nil {
		return patch, err
	}
	patch.TransactionDate = date
	return patch, nil
}

func toFilter(req *pb.ListTransactionsRequest) (domain.TransactionFilter, error) {
	from, err := timeFrom("from", req.GetFrom())
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	to, err := timeFrom("to", req.GetTo())
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	return domain.TransactionFilter{
		Category:   req.GetCategory(),
		Division:   req.GetDivision(),
		Account:    req.GetAccount(),
		SearchText: req.GetSearchText(),
		From:       from,
		To:         to,
	}, nil
}
