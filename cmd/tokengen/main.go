// Command tokengen mints a bearer token for a ledger account, for local
// development against a running server. It reads JWT_SECRET and JWT_DURATION
// like the server does.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
)

func main() {
	accountFlag := flag.String("account", "", "account id the token acts as (e.g. alice.testnet)")
	flag.Parse()

	if err := run(*accountFlag); err != nil {
		slog.Error("failed to mint token", "error", err)
		os.Exit(1)
	}
}

func run(rawAccount string) error {
	acc, err := account.NewID(rawAccount)
	if err != nil {
		return err
	}

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(acc)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
