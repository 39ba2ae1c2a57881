package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	grpc_adapter "github.com/JoeShih716/go-cash-ledger/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	grpcpool "github.com/JoeShih716/go-cash-ledger/pkg/grpc"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
	pb "github.com/JoeShih716/go-cash-ledger/proto"
)

const usage = `usage: ledgerctl [global flags] <command> [flags]

commands:
  create-account  建立帳戶 (-name)
  account         查詢帳戶 (-name)
  accounts        列出所有帳戶
  record          記錄收入或支出
  transfer        帳戶間轉帳 (-from -to -amount)
  list            查詢交易
  get             查詢單筆交易 (-id)
  edit            修改交易 (只修改有指定的欄位)
  delete          刪除交易 (-id)
  dedup           執行重複交易掃描 (-all -dry-run)
  bench           併發轉帳壓力測試

global flags:
`

type command func(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error)

var commands = map[string]command{
	"create-account": createAccount,
	"account":        getAccount,
	"accounts":       listAccounts,
	"record":         record,
	"transfer":       transfer,
	"list":           listTransactions,
	"get":            getTransaction,
	"edit":           editTransaction,
	"delete":         deleteTransaction,
	"dedup":          dedup,
	"bench":          bench,
}

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("LEDGER_ADDR", "localhost:50051"), "ledgerd address")
	owner := flag.String("owner", os.Getenv("LEDGER_OWNER"), "owner id sent as x-owner-id")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	verbose := flag.Bool("v", false, "log every rpc")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	run, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logger.NewWithWriter(logger.Config{Level: level}, os.Stderr)

	opts := []grpcpool.PoolOption{
		grpcpool.WithInterceptor(grpcpool.LoggingInterceptor(log)),
	}
	if *owner != "" {
		opts = append(opts, grpcpool.WithInterceptor(grpcpool.MetadataInterceptor(grpc_adapter.OwnerMetadataKey, *owner)))
	}
	pool := grpcpool.NewPool(opts...)
	defer pool.Close()

	conn, err := pool.GetConnection(*addr)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	out, err := run(ctx, pb.NewLedgerServiceClient(conn), flag.Args()[1:])
	if err != nil {
		fatal(err)
	}
	if out != nil {
		if err := printResult(out); err != nil {
			fatal(err)
		}
	}
}

var marshaler = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

// printResult 回應訊息以 protojson 輸出，其餘 (例如 bench 統計) 以 encoding/json 輸出
func printResult(out any) error {
	if msg, ok := out.(proto.Message); ok {
		b, err := marshaler.Marshal(msg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(b))
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func fatal(err error) {
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if st, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "error (%s): %s\n", grpc_adapter.KindFromStatus(err), st.Message())
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(os.Stderr)
	return fs.Parse(args)
}

func required(fs *flag.FlagSet, names ...string) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var missing []string
	for _, n := range names {
		if !set[n] {
			missing = append(missing, "-"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing %s", fs.Name(), strings.Join(missing, ", "))
	}
	return nil
}

// parseTime 接受 RFC3339 或 2006-01-02 (UTC)
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func createAccount(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)
	name := fs.String("name", "", "Cash, Bank or Wallet")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "name"); err != nil {
		return nil, err
	}
	return c.CreateAccount(ctx, &pb.CreateAccountRequest{Name: *name})
}

func getAccount(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("account", flag.ContinueOnError)
	name := fs.String("name", "", "Cash, Bank or Wallet")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "name"); err != nil {
		return nil, err
	}
	return c.GetAccount(ctx, &pb.GetAccountRequest{Name: *name})
}

func listAccounts(ctx context.Context, c pb.LedgerServiceClient, _ []string) (any, error) {
	return c.ListAccounts(ctx, &pb.ListAccountsRequest{})
}

func record(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	typ := fs.String("type", "expense", "income or expense")
	amount := fs.String("amount", "", "positive amount, up to 4 decimals")
	category := fs.String("category", "", "category")
	description := fs.String("description", "", "description")
	division := fs.String("division", "Personal", "Office or Personal")
	account := fs.String("account", "", "Cash, Bank or Wallet")
	date := fs.String("date", "", "transaction date (default now)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "amount", "category", "account"); err != nil {
		return nil, err
	}
	when := time.Now().UTC()
	if *date != "" {
		var err error
		if when, err = parseTime(*date); err != nil {
			return nil, err
		}
	}
	return c.RecordTransaction(ctx, &pb.RecordTransactionRequest{
		Type:            *typ,
		Amount:          *amount,
		Category:        *category,
		Description:     *description,
		Division:        *division,
		Account:         *account,
		TransactionDate: timestamppb.New(when),
	})
}

func transfer(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("transfer", flag.ContinueOnError)
	from := fs.String("from", "", "source account")
	to := fs.String("to", "", "destination account")
	amount := fs.String("amount", "", "positive amount")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "from", "to", "amount"); err != nil {
		return nil, err
	}
	return c.RecordTransfer(ctx, &pb.RecordTransferRequest{FromAccount: *from, ToAccount: *to, Amount: *amount})
}

func listTransactions(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	req := &pb.ListTransactionsRequest{}
	fs.StringVar(&req.Category, "category", "", "exact category (case-insensitive)")
	fs.StringVar(&req.Division, "division", "", "exact division (case-insensitive)")
	fs.StringVar(&req.Account, "account", "", "exact account (case-insensitive)")
	fs.StringVar(&req.SearchText, "search", "", "substring of description")
	from := fs.String("from", "", "transaction date lower bound")
	to := fs.String("to", "", "transaction date upper bound")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	for _, b := range []struct {
		raw string
		dst **timestamppb.Timestamp
	}{{*from, &req.From}, {*to, &req.To}} {
		if b.raw == "" {
			continue
		}
		t, err := parseTime(b.raw)
		if err != nil {
			return nil, err
		}
		*b.dst = timestamppb.New(t)
	}
	return c.ListTransactions(ctx, req)
}

func getTransaction(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	id := fs.String("id", "", "transaction id")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "id"); err != nil {
		return nil, err
	}
	return c.GetTransaction(ctx, &pb.GetTransactionRequest{Id: *id})
}

func editTransaction(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.String("id", "", "transaction id")
	amount := fs.String("amount", "", "new amount")
	category := fs.String("category", "", "new category")
	description := fs.String("description", "", "new description")
	division := fs.String("division", "", "new division")
	account := fs.String("account", "", "new account")
	date := fs.String("date", "", "new transaction date")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "id"); err != nil {
		return nil, err
	}

	req := &pb.EditTransactionRequest{Id: *id}
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "amount":
			req.Amount = wrapperspb.String(*amount)
		case "category":
			req.Category = wrapperspb.String(*category)
		case "description":
			req.Description = wrapperspb.String(*description)
		case "division":
			req.Division = wrapperspb.String(*division)
		case "account":
			req.Account = wrapperspb.String(*account)
		case "date":
			var t time.Time
			if t, err = parseTime(*date); err == nil {
				req.TransactionDate = timestamppb.New(t)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return c.EditTransaction(ctx, req)
}

func deleteTransaction(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "transaction id")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if err := required(fs, "id"); err != nil {
		return nil, err
	}
	if _, err := c.DeleteTransaction(ctx, &pb.DeleteTransactionRequest{Id: *id}); err != nil {
		return nil, err
	}
	return map[string]string{"deleted": *id}, nil
}

func dedup(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("dedup", flag.ContinueOnError)
	all := fs.Bool("all", false, "scan every owner")
	dryRun := fs.Bool("dry-run", false, "only report duplicates")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	return c.RunDuplicateScan(ctx, &pb.RunDuplicateScanRequest{AllOwners: *all, DryRun: *dryRun})
}

type benchResult struct {
	Requests     int     `json:"requests"`
	Succeeded    int64   `json:"succeeded"`
	Insufficient int64   `json:"insufficient"`
	Failed       int64   `json:"failed"`
	Elapsed      string  `json:"elapsed"`
	TPS          float64 `json:"tps"`
}

// bench 併發送出轉帳，統計成功與餘額不足的數量
func bench(ctx context.Context, c pb.LedgerServiceClient, args []string) (any, error) {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	total := fs.Int("n", 1000, "number of transfers")
	concurrency := fs.Int("c", 50, "concurrent requests")
	from := fs.String("from", "Bank", "source account")
	to := fs.String("to", "Wallet", "destination account")
	amount := fs.String("amount", "1", "amount per transfer")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if *total <= 0 || *concurrency <= 0 {
		return nil, errors.New("bench: -n and -c must be positive")
	}
	if _, err := domain.ParseMoney(*amount); err != nil {
		return nil, err
	}

	var ok, insufficient, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	start := time.Now()
	for i := 0; i < *total; i++ {
		g.Go(func() error {
			_, err := c.RecordTransfer(gctx, &pb.RecordTransferRequest{FromAccount: *from, ToAccount: *to, Amount: *amount})
			switch {
			case err == nil:
				ok.Add(1)
			case grpc_adapter.KindFromStatus(err) == domain.KindInsufficientBalance:
				insufficient.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	return benchResult{
		Requests:     *total,
		Succeeded:    ok.Load(),
		Insufficient: insufficient.Load(),
		Failed:       failed.Load(),
		Elapsed:      elapsed.String(),
		TPS:          float64(*total) / elapsed.Seconds(),
	}, nil
}
