// Package main provides a connectivity probe for a BookClub backend.
//
// It attempts a register/authenticate round trip and an OPTIONS preflight,
// reporting whether the backend is reachable and browser-friendly.
//
// Usage:
//
//	go run ./cmd/apicheck --backend-url http://localhost:8000
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/bookclubapp/bookclub-client/internal/config"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
	"github.com/bookclubapp/bookclub-client/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := false

	fmt.Printf("Checking backend at %s\n\n", cfg.Backend.BaseURL)

	// 1. Register round trip with a throwaway account.
	gw := gateway.New(gateway.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		RPS:     cfg.Backend.RPS,
		Burst:   cfg.Backend.Burst,
	}, log.Logger)

	suffix, err := gonanoid.New(8)
	if err != nil {
		suffix = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	username := "apicheck-" + suffix

	userID, err := gw.Register(ctx, username, "apicheck-password")
	if err != nil {
		fmt.Printf("FAIL register: %v\n", err)
		failed = true
	} else {
		fmt.Printf("ok   register (user %s)\n", userID)

		if _, err := gw.Authenticate(ctx, username, "apicheck-password"); err != nil {
			fmt.Printf("FAIL authenticate: %v\n", err)
			failed = true
		} else {
			fmt.Println("ok   authenticate")
		}

		// Clean up the throwaway account; a failure here is only a warning.
		if err := gw.DeleteUser(ctx, userID); err != nil {
			fmt.Printf("warn delete throwaway user: %v\n", err)
		} else {
			fmt.Println("ok   delete throwaway user")
		}
	}

	// 2. CORS preflight, the way a browser SPA would issue it.
	if err := checkPreflight(ctx, cfg.Backend.BaseURL); err != nil {
		fmt.Printf("FAIL preflight: %v\n", err)
		failed = true
	} else {
		fmt.Println("ok   CORS preflight")
	}

	if failed {
		fmt.Println("\nBackend check FAILED")
		os.Exit(1)
	}
	fmt.Println("\nBackend check passed")
}

func checkPreflight(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, baseURL+"/api/Authentication/register", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("preflight status %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") == "" {
		return fmt.Errorf("no Access-Control-Allow-Origin header; browser clients will be blocked")
	}
	return nil
}
