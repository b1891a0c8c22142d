package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/api"
)

func runWord(e *env, args []string) error {
	if len(args) == 0 {
		return errors.New("at least one word is required")
	}

	t := newTrie(e)
	if err := loadTrie(e, t); err != nil {
		return err
	}

	for _, word := range args {
		fmt.Fprintf(e.stdout, "%s: %t\n", word, t.SearchFullWord(word))
	}
	return nil
}

func runPrefix(e *env, args []string) error {
	if len(args) == 0 {
		return errors.New("at least one prefix is required")
	}

	t := newTrie(e)
	if err := loadTrie(e, t); err != nil {
		return err
	}

	for _, prefix := range args {
		fmt.Fprintf(e.stdout, "%s: %t\n", prefix, t.SearchPrefix(prefix))
	}
	return nil
}

func runServe(e *env, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("serve takes no arguments, got %d", len(args))
	}

	store := api.NewStore(newTrie(e))
	if err := loadTrie(e, store); err != nil {
		return err
	}

	srv := api.NewServer(e.cfg.Server.Addr(), store, e.logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), e.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	e.logger.Info().Msg("Server exiting")
	return nil
}
