package mongodb

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratemongo "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:embed migrations/*.json
var migrationFiles embed.FS

// RunMigrations applies the embedded index migrations to database.
func RunMigrations(client *mongo.Client, database string, logger *logrus.Logger) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratemongo.WithInstance(client, &migratemongo.Config{DatabaseName: database})
	if err != nil {
		return err
	}
	// m.Close is not called: it would disconnect the shared client.
	m, err := migrate.NewWithInstance("iofs", src, database, driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
