package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// isUniqueViolation detects the partial unique indexes created in
// db.NewDB firing underneath us. The database, not this check-then-act
// code, is the arbiter of slot and payment exclusivity.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Slot occupancy
// --------------------------------------------------

func (r *BookingGormRepository) ListReservationsForBarberDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Reservation, error) {

	var rows []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND appointment_date = ?", barberID, date).
		Order("appointment_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *BookingGormRepository) ListGuestTransactionsForBarberDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.GuestTransaction, error) {

	var rows []models.GuestTransaction
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND appointment_date = ?", barberID, date).
		Order("appointment_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) lockSlotConflicts(
	tx *gorm.DB,
	barberID uint,
	date string,
	timeSlot string,
) error {

	var reservations []models.Reservation
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			barberID, date, timeSlot, activeStatuses,
		).
		Find(&reservations).Error; err != nil {
		return err
	}

	if len(reservations) > 0 {
		return httperr.ErrBusiness("slot_taken")
	}

	var guests []models.GuestTransaction
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
			barberID, date, timeSlot, string(domain.StatusPending),
		).
		Find(&guests).Error; err != nil {
		return err
	}

	if len(guests) > 0 {
		return httperr.ErrBusiness("slot_taken")
	}

	return nil
}

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockSlotConflicts(
			tx, res.BarberID, res.AppointmentDate, res.AppointmentTime,
		); err != nil {
			return err
		}

		return tx.Create(res).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *BookingGormRepository) CreateGuestTransaction(
	ctx context.Context,
	gt *models.GuestTransaction,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockSlotConflicts(
			tx, gt.BarberID, gt.AppointmentDate, gt.AppointmentTime,
		); err != nil {
			return err
		}

		return tx.Create(gt).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *BookingGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Preload("Customer").
		First(&res, id).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *BookingGormRepository) GetPaymentByReservation(
	ctx context.Context,
	reservationID uint,
) (*models.Payment, error) {

	var p models.Payment
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePaymentMarkPaid makes "payment recorded" and "reservation
// paid" a single transition: either both rows change or neither does.
func (r *BookingGormRepository) CreatePaymentMarkPaid(
	ctx context.Context,
	p *models.Payment,
) (*models.Reservation, error) {

	var updated models.Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", p.ReservationID).
			Update("payment_status", string(domain.PaymentPaid)).Error; err != nil {
			return err
		}

		return tx.First(&updated, p.ReservationID).Error
	})

	if isUniqueViolation(err) {
		return nil, httperr.ErrBusiness("payment_exists")
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *BookingGormRepository) GetGuestTransactionByID(
	ctx context.Context,
	id uint,
) (*models.GuestTransaction, error) {

	var gt models.GuestTransaction
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		First(&gt, id).Error; err != nil {
		return nil, err
	}

	return &gt, nil
}

// UpdateGuestTransaction writes only the mutable ledger columns. The
// row arrives with Service/Barber preloaded and a blanket Save would
// upsert those associations too.
func (r *BookingGormRepository) UpdateGuestTransaction(
	ctx context.Context,
	gt *models.GuestTransaction,
) error {
	return r.db.WithContext(ctx).
		Model(&models.GuestTransaction{}).
		Where("id = ?", gt.ID).
		Select("status", "amount_paid").
		Updates(map[string]any{
			"status":      gt.Status,
			"amount_paid": gt.AmountPaid,
		}).Error
}

func (r *BookingGormRepository) ListStalePendingGuestTransactions(
	ctx context.Context,
	createdBefore time.Time,
) ([]models.GuestTransaction, error) {

	var rows []models.GuestTransaction
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND created_at < ?",
			string(domain.StatusPending), createdBefore,
		).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
