package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/internal/bootstrap"
	"github.com/JoeShih716/go-cash-ledger/internal/config"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// duplicate 輸出用的重複交易摘要
type duplicate struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Type            string    `json:"type"`
	Amount          string    `json:"amount"`
	Account         string    `json:"account"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

type report struct {
	Owner      string      `json:"owner,omitempty"`
	DryRun     bool        `json:"dryRun"`
	Reconciled bool        `json:"reconciled"`
	Kept       int         `json:"kept"`
	Deleted    int         `json:"deleted"`
	Duplicates []duplicate `json:"duplicates"`
}

// ledger-dedup 直接連線儲存層執行重複交易清理，適合排程或維運時手動執行
func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	owner := flag.String("owner", "", "only scan this owner (default all owners)")
	dryRun := flag.Bool("dry-run", false, "report duplicates without deleting")
	reconcile := flag.Bool("reconcile", false, "also reverse the balance effect of deleted duplicates")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "reconcile" {
			cfg.Ledger.ReconcileDuplicates = *reconcile
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	appLog := logger.NewWithWriter(cfg.Log, os.Stderr).WithComponent("ledger-dedup")

	store, err := bootstrap.OpenStore(cfg, appLog)
	if err != nil {
		appLog.Error("failed to open store", logger.FieldError, err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	detector := usecase.NewDuplicateDetector(store, usecase.DuplicateDetectorOptions{
		Logger:            appLog,
		ReconcileBalances: cfg.Ledger.ReconcileDuplicates,
	})

	var res *usecase.ScanResult
	if *dryRun {
		res, err = detector.Scan(ctx, *owner)
	} else {
		res, err = detector.Run(ctx, *owner)
	}
	if err != nil {
		appLog.Error("duplicate scan failed", logger.FieldError, err)
		store.Close()
		os.Exit(1)
	}

	out := report{
		Owner:      *owner,
		DryRun:     *dryRun,
		Reconciled: !*dryRun && cfg.Ledger.ReconcileDuplicates,
		Kept:       res.Kept,
		Deleted:    res.Deleted,
		Duplicates: make([]duplicate, 0, len(res.Duplicates)),
	}
	for _, t := range res.Duplicates {
		out.Duplicates = append(out.Duplicates, duplicate{
			ID:              t.ID.String(),
			OwnerID:         t.OwnerID,
			Type:            string(t.Type),
			Amount:          t.Amount.String(),
			Account:         string(t.Account),
			Description:     t.Description,
			TransactionDate: t.TransactionDate,
			CreatedAt:       t.CreatedAt,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		appLog.Error("failed to write report", logger.FieldError, err)
		store.Close()
		os.Exit(1)
	}
}
