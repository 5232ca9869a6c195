package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveShop(
	ctx context.Context,
	shopID uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND is_active = true", shopID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetShopForBarber(
	ctx context.Context,
	shopID uint,
	barberID uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", shopID, barberID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"shop_id = ? AND appointment_at = ? AND status IN ?",
				b.ShopID, b.AppointmentAt, domain.ActiveStatuses(),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(b).Error
	})

	// The partial unique slot index closes the race the locked check can
	// miss across instances.
	if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_already_booked")
	}

	return err
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Customer").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingForCustomer(
	ctx context.Context,
	bookingID uint,
	customerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", bookingID, customerID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
