package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"betx.backend/internal/config"
	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/infrastructure/datasources/postgres"
	"betx.backend/internal/infrastructure/repositories"
)

var openAdminGrantDB = postgres.NewConnection

type adminGrantRuntime interface {
	GetByMobile(ctx context.Context, mobile string) (*entities.User, error)
	GrantAdmin(ctx context.Context, id uuid.UUID, privileges []string) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, expectedVersion int64) error
}

type adminGrantDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (adminGrantRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func prepareRuntime(cfg *config.Config) (adminGrantRuntime, io.Closer, error) {
	db, err := openAdminGrantDB(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
	}
	return repositories.NewUserRepository(db), sqlDB, nil
}

func defaultAdminGrantDeps() adminGrantDeps {
	return adminGrantDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: prepareRuntime,
		out:     os.Stdout,
	}
}

type grantOptions struct {
	mobile     string
	balance    *decimal.Decimal
	privileges []string
}

func parseGrantFlags(args []string) (*grantOptions, error) {
	fs := flag.NewFlagSet("admin-grant", flag.ContinueOnError)
	mobileFlag := fs.String("mobile", "", "registered 10-digit mobile to promote (required)")
	balanceFlag := fs.String("balance", "", "opening admin balance (optional)")
	privilegesFlag := fs.String("privileges", "", "comma separated admin privileges (optional)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &grantOptions{mobile: strings.TrimSpace(*mobileFlag)}
	if opts.mobile == "" {
		return nil, fmt.Errorf("--mobile is required")
	}
	if !entities.ValidateMobile(opts.mobile) {
		return nil, fmt.Errorf("invalid mobile number format: %s", opts.mobile)
	}

	if *balanceFlag != "" {
		balance, err := decimal.NewFromString(*balanceFlag)
		if err != nil || balance.IsNegative() {
			return nil, fmt.Errorf("invalid --balance %q", *balanceFlag)
		}
		opts.balance = &balance
	}

	for _, p := range strings.Split(*privilegesFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			opts.privileges = append(opts.privileges, p)
		}
	}
	return opts, nil
}

func runAdminGrant(args []string, deps adminGrantDeps) error {
	def := defaultAdminGrantDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	opts, err := parseGrantFlags(args)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	runtime, closer, err := deps.prepare(deps.loadCfg())
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	user, err := runtime.GetByMobile(ctx, opts.mobile)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return fmt.Errorf("no user registered with mobile %s", opts.mobile)
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := runtime.GrantAdmin(ctx, user.ID, opts.privileges); err != nil {
		return fmt.Errorf("failed to grant admin: %w", err)
	}
	_, _ = fmt.Fprintf(deps.out, "Granted admin to user_id=%s mobile=%s\n", user.ID, user.Mobile)

	if opts.balance != nil {
		if err := runtime.UpdateBalance(ctx, user.ID, *opts.balance, user.Version); err != nil {
			return fmt.Errorf("failed to set balance: %w", err)
		}
		_, _ = fmt.Fprintf(deps.out, "balance=%s\n", opts.balance.StringFixed(2))
	}
	return nil
}

func main() {
	if err := runAdminGrant(os.Args[1:], defaultAdminGrantDeps()); err != nil {
		log.Fatal(err)
	}
}
