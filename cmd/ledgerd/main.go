package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-cash-ledger/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/internal/bootstrap"
	"github.com/JoeShih716/go-cash-ledger/internal/config"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
	pb "github.com/JoeShih716/go-cash-ledger/proto"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	flag.Parse()

	// .env 不存在時忽略
	_ = godotenv.Load()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// 2. Logger
	appLog := logger.New(cfg.Log).WithComponent("ledgerd")
	logger.SetDefault(appLog)

	// 3. 儲存層
	store, err := bootstrap.OpenStore(cfg, appLog)
	if err != nil {
		appLog.Error("failed to open store", logger.FieldError, err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. UseCase
	ledger := usecase.NewLedgerService(store, usecase.Options{
		Logger:               appLog,
		ReconcileAmountEdits: cfg.Ledger.ReconcileAmountEdits,
	})
	detector := usecase.NewDuplicateDetector(store, usecase.DuplicateDetectorOptions{
		Logger:            appLog,
		ReconcileBalances: cfg.Ledger.ReconcileDuplicates,
	})

	// 5. gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		appLog.Error("failed to listen", "address", cfg.Server.Address, logger.FieldError, err)
		os.Exit(1)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc_adapter.LoggingInterceptor(appLog)))
	pb.RegisterLedgerServiceServer(s, grpc_adapter.NewServer(ledger, detector))
	if cfg.Server.Reflection {
		reflection.Register(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLog.Info("starting gRPC server", "address", lis.Addr().String(), "store", cfg.Store.Driver)
		if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		appLog.Info("shutting down server")
		gracefulStop(s, cfg.Server.ShutdownTimeout)
		return nil
	})

	if err := g.Wait(); err != nil {
		appLog.Error("server exited with error", logger.FieldError, err)
		store.Close()
		os.Exit(1)
	}
	appLog.Info("server exited")
}

// gracefulStop 等待進行中的請求完成，超過 timeout 時強制關閉
func gracefulStop(s *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.Stop()
	}
}
