package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"durotar/internal/config"
	"durotar/internal/engine"
	"durotar/internal/logging"
	"durotar/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "YAML config file (default: built-in settings)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := ensureHostKey(cfg.Server.HostKey, logger); err != nil {
		logger.Fatal("host key", zap.Error(err))
	}

	g, err := engine.Setup(cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	srv, err := server.NewSSHServer(server.Options{
		Addr:          cfg.Server.Addr,
		HostKey:       cfg.Server.HostKey,
		KeyHold:       cfg.Server.KeyHold,
		PixelsPerCell: cfg.Terminal.PixelsPerCell,
	}, g, logger)
	if err != nil {
		logger.Fatal("ssh server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.ListenAndServe)
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	})

	logger.Info("connect with: ssh -t -p <port> localhost", zap.String("addr", cfg.Server.Addr))
	if err := eg.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func ensureHostKey(path string, logger *zap.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	logger.Info("generating new host key", zap.String("path", path))
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
