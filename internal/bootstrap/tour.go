package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	app "github.com/mohammadpnp/user-accounts/internal/application/account"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/file"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/repository"
	"github.com/mohammadpnp/user-accounts/internal/interfaces/console"
)

var (
	DefaultNames          = []string{"ericson", "joao"}
	DefaultAddressOwnerID = int64(2)
)

// Run opens the database, runs the tour against it and prints everything to
// out.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) error {
	seed, err := file.NewSeedSource(".").Load(ctx, cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	gdb, err := db.Open(ctx, db.Config{Driver: cfg.Driver, DSN: cfg.DSN, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Warn("close database failed", "error", err)
		}
	}()

	printer := console.NewPrinter(out)
	tour, getUser := newUseCases(gdb, printer, logger)

	if _, err := tour.Execute(ctx, app.TourInput{
		Seed:           seed,
		ResetSchema:    cfg.ResetSchema,
		Names:          DefaultNames,
		AddressOwnerID: DefaultAddressOwnerID,
	}); err != nil {
		return err
	}

	user, err := getUser.Execute(ctx, app.GetUserByIDInput{ID: DefaultAddressOwnerID})
	if err != nil {
		return err
	}
	printer.UserDetail(user)

	return nil
}

func newUseCases(gdb *gorm.DB, printer *console.Printer, logger *slog.Logger) (*app.Tour, app.GetUserByID) {
	schema := db.NewSchemaManager(gdb)
	store := repository.NewStore(gdb, logger)

	return app.NewTour(schema, store, printer, logger), app.NewGetUserByID(store)
}
