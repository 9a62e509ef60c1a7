package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/config"
	"github.com/Aniket-49001/Railway-Concession/models"
	"github.com/Aniket-49001/Railway-Concession/routes"
	"github.com/Aniket-49001/Railway-Concession/services"
	"github.com/Aniket-49001/Railway-Concession/store"
	"github.com/Aniket-49001/Railway-Concession/utils"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg.MySQLDSN)
	if err != nil {
		logrus.WithError(err).Warn("database unreachable, running degraded with file-backed users")
		db = nil
	} else {
		if err := migrate(db); err != nil {
			logrus.WithError(err).Fatal("migration failed")
		}
		utils.SeedReferenceData(db)
	}

	var users store.UserStore
	if db != nil {
		users = store.NewGormUserStore(db)
	} else {
		users = store.NewFileUserStore(cfg.UsersFile)
	}

	sessions := store.NewSessionStore(time.Duration(cfg.SessionTTLHours) * time.Hour)

	var ledger *services.Ledger
	if db != nil {
		ledger = services.NewLedger(store.NewGormInventory(db))
	}

	r := routes.SetupRouter(routes.Deps{
		DB:       db,
		Users:    users,
		Sessions: sessions,
		Ledger:   ledger,
	})

	addr := ":" + cfg.Port
	logrus.Infof("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Station{},
		&models.Train{},
		&models.Booking{},
		&models.College{},
		&models.ConcessionApplication{},
	)
}
