package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-cash-ledger/proto"
)

// Server 將 gRPC 請求轉給 LedgerService / DuplicateDetector
type Server struct {
	pb.UnimplementedLedgerServiceServer

	ledger   *usecase.LedgerService
	detector *usecase.DuplicateDetector
}

// NewServer 建立 Server
func NewServer(ledger *usecase.LedgerService, detector *usecase.DuplicateDetector) *Server {
	return &Server{
		ledger:   ledger,
		detector: detector,
	}
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.Invalid("id", "must be a UUID")
	}
	return id, nil
}

func (s *Server) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.Account, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	name, err := domain.ParseAccountName("name", req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	account, err := s.ledger.CreateAccount(ctx, owner, name)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccountProto(account), nil
}

func (s *Server) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.Account, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	name, err := domain.ParseAccountName("name", req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	account, err := s.ledger.GetAccount(ctx, owner, name)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccountProto(account), nil
}

func (s *Server) ListAccounts(ctx context.Context, _ *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	accounts, err := s.ledger.ListAccounts(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListAccountsResponse{Accounts: make([]*pb.Account, 0, len(accounts))}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, toAccountProto(&accounts[i]))
	}
	return resp, nil
}

func (s *Server) RecordTransaction(ctx context.Context, req *pb.RecordTransactionRequest) (*pb.Transaction, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	in, err := toRecordInput(owner, req)
	if err != nil {
		return nil, toStatus(err)
	}
	tran, err := s.ledger.RecordTransaction(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return toTransactionProto(tran), nil
}

func (s *Server) RecordTransfer(ctx context.Context, req *pb.RecordTransferRequest) (*pb.TransferResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	from, err := domain.ParseAccountName("fromAccount", req.GetFromAccount())
	if err != nil {
		return nil, toStatus(err)
	}
	to, err := domain.ParseAccountName("toAccount", req.GetToAccount())
	if err != nil {
		return nil, toStatus(err)
	}
	amount, err := domain.ParseMoney(req.GetAmount())
	if err != nil {
		return nil, toStatus(err)
	}
	res, err := s.ledger.RecordTransfer(ctx, owner, from, to, amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TransferResponse{
		Transaction: toTransactionProto(res.Transaction),
		Source:      toAccountProto(res.Source),
		Destination: toAccountProto(res.Destination),
	}, nil
}

func (s *Server) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	filter, err := toFilter(req)
	if err != nil {
		return nil, toStatus(err)
	}
	trans, err := s.ledger.ListTransactions(ctx, owner, filter)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListTransactionsResponse{Transactions: make([]*pb.Transaction, 0, len(trans))}
	for i := range trans {
		resp.Transactions = append(resp.Transactions, toTransactionProto(&trans[i]))
	}
	return resp, nil
}

func (s *Server) GetTransaction(ctx context.Context, req *pb.GetTransactionRequest) (*pb.Transaction, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	tran, err := s.ledger.GetTransaction(ctx, owner, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return toTransactionProto(tran), nil
}

func (s *Server) EditTransaction(ctx context.Context, req *pb.EditTransactionRequest) (*pb.Transaction, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	patch, err := toPatch(req)
	if err != nil {
		return nil, toStatus(err)
	}
	tran, err := s.ledger.EditTransaction(ctx, owner, id, patch)
	if err != nil {
		return nil, toStatus(err)
	}
	return toTransactionProto(tran), nil
}

func (s *Server) DeleteTransaction(ctx context.Context, req *pb.DeleteTransactionRequest) (*emptypb.Empty, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.ledger.DeleteTransaction(ctx, owner, id); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) RunDuplicateScan(ctx context.Context, req *pb.RunDuplicateScanRequest) (*pb.RunDuplicateScanResponse, error) {
	var scope string
	if !req.GetAllOwners() {
		owner, err := ownerFrom(ctx)
		if err != nil {
			return nil, toStatus(err)
		}
		scope = owner
	}

	var (
		res *usecase.ScanResult
		err error
	)
	if req.GetDryRun() {
		res, err = s.detector.Scan(ctx, scope)
	} else {
		res, err = s.detector.Run(ctx, scope)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RunDuplicateScanResponse{
		Kept:    int64(res.Kept),
		Deleted: int64(res.Deleted),
		DryRun:  req.GetDryRun(),
	}, nil
}

var _ pb.LedgerServiceServer = (*Server)(nil)
