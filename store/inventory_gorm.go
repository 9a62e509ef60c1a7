package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Aniket-49001/Railway-Concession/models"
	"github.com/Aniket-49001/Railway-Concession/services"
)

// GormInventory implements the ledger's InventoryStore on MySQL. Both
// mutations run inside a transaction that row-locks the train, and the
// seat decrement is additionally guarded by the WHERE clause, so even
// writers outside this process cannot push availableSeats below zero.
type GormInventory struct {
	db *gorm.DB
}

func NewGormInventory(db *gorm.DB) *GormInventory {
	return &GormInventory{db: db}
}

func (s *GormInventory) TrainByNumber(ctx context.Context, number string) (*models.Train, error) {
	var train models.Train
	err := s.db.WithContext(ctx).Where("train_number = ?", number).First(&train).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrTrainNotFound
	}
	if err != nil {
		return nil, err
	}
	return &train, nil
}

func (s *GormInventory) BookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormInventory) CommitBooking(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var train models.Train
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("train_number = ?", b.TrainNumber).First(&train).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrTrainNotFound
			}
			return err
		}

		res := tx.Model(&models.Train{}).
			Where("train_number = ? AND available_seats >= ?", b.TrainNumber, b.Passengers).
			UpdateColumn("available_seats", gorm.Expr("available_seats - ?", b.Passengers))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return services.ErrNotEnoughSeats
		}

		return tx.Create(b).Error
	})
}

func (s *GormInventory) ReleaseBooking(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", b.BookingID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrBookingNotFound
			}
			return err
		}
		if current.Status == models.BookingCancelled {
			return services.ErrAlreadyCancelled
		}

		if err := tx.Model(&current).UpdateColumn("status", models.BookingCancelled).Error; err != nil {
			return err
		}

		// Seats never climb past totalSeats, even if the train was shrunk
		// after this booking was made.
		return tx.Model(&models.Train{}).
			Where("train_number = ?", current.TrainNumber).
			UpdateColumn("available_seats", gorm.Expr(
				"CASE WHEN available_seats + ? > total_seats THEN total_seats ELSE available_seats + ? END",
				current.Passengers, current.Passengers)).Error
	})
}
