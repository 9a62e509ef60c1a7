package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Aniket-49001/Railway-Concession/models"
	"github.com/Aniket-49001/Railway-Concession/utils"
)

var (
	ErrTrainNotFound     = errors.New("train not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidPassengers = errors.New("passenger count must be at least 1")
	ErrInvalidDate       = errors.New("invalid journey date")
	ErrNotEnoughSeats    = errors.New("not enough seats available")
	ErrNotOwner          = errors.New("booking belongs to another user")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
)

// InventoryStore is the slice of the persistence layer the ledger needs.
// CommitBooking must decrement the train's available seats and insert the
// booking as one atomic unit; ReleaseBooking must mark the booking
// cancelled and restore the seats the same way.
type InventoryStore interface {
	TrainByNumber(ctx context.Context, number string) (*models.Train, error)
	BookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	CommitBooking(ctx context.Context, b *models.Booking) error
	ReleaseBooking(ctx context.Context, b *models.Booking) error
}

// Ledger owns the seat-inventory invariant: for every train,
// 0 <= availableSeats <= totalSeats, adjusted only by confirmed and
// cancelled bookings. All seat mutations go through here.
type Ledger struct {
	store InventoryStore
	locks *utils.LockMap
}

func NewLedger(store InventoryStore) *Ledger {
	return &Ledger{store: store, locks: utils.NewLockMap()}
}

const journeyDateLayout = "2006-01-02"

// Book validates the request and creates a Confirmed booking paired with
// the seat decrement. The per-train lock serializes the read-check-write
// sequence, so two callers racing for the last seats cannot both win.
func (l *Ledger) Book(ctx context.Context, requester, trainNumber string, passengers int, journeyDate string) (*models.Booking, error) {
	unlock := l.locks.Lock(trainNumber)
	defer unlock()

	train, err := l.store.TrainByNumber(ctx, trainNumber)
	if err != nil {
		return nil, err
	}

	if passengers < 1 {
		return nil, ErrInvalidPassengers
	}

	date, err := time.Parse(journeyDateLayout, journeyDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrInvalidDate
	}

	if train.AvailableSeats < passengers {
		return nil, ErrNotEnoughSeats
	}

	booking := &models.Booking{
		BookingID:   newBookingID(),
		UserEmail:   strings.ToLower(requester),
		TrainNumber: train.TrainNumber,
		TrainName:   train.TrainName,
		Source:      train.Source,
		Destination: train.Destination,
		Passengers:  passengers,
		TotalFare:   train.Fare * float64(passengers),
		Status:      models.BookingConfirmed,
		JourneyDate: date,
	}

	if err := l.store.CommitBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel flips a Confirmed booking to Cancelled and restores its seats to
// the train, capped at totalSeats. Only the booking's owner may cancel.
func (l *Ledger) Cancel(ctx context.Context, requester, bookingID string) (*models.Booking, error) {
	booking, err := l.store.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(booking.UserEmail, requester) {
		return nil, ErrNotOwner
	}

	unlock := l.locks.Lock(booking.TrainNumber)
	defer unlock()

	if err := l.store.ReleaseBooking(ctx, booking); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	return booking, nil
}

func newBookingID() string {
	return "BK-" + strings.ToUpper(uuid.NewString())
}
