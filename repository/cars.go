package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/models"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// CarRecord is one row of the cars list: the car joined with its (possibly
// absent) details row. Date fields render as "YYYY-MM-DD" or null.
type CarRecord struct {
	CarID                  int          `json:"car_id"`
	DetailID               *int         `json:"detail_id"`
	Make                   *string      `json:"make"`
	Model                  *string      `json:"model"`
	Year                   *int         `json:"year"`
	Mileage                *int         `json:"mileage"`
	LastMaintenanceCheckup *models.Date `json:"last_maintenance_checkup"`
	LastOilChange          *models.Date `json:"last_oil_change"`
	PurchaseDate           *models.Date `json:"purchase_date"`
	LastBrakePadChange     *models.Date `json:"last_brake_pad_change"`
}

// ListUserCars returns every car for the user, left-joined with its
// details. An unknown user and a user with no cars both yield an empty
// slice.
func (r *CarRepository) ListUserCars(ctx context.Context, userUUID uuid.UUID) ([]CarRecord, error) {
	cars := make([]CarRecord, 0)
	err := r.db.WithContext(ctx).
		Table("cars").
		Select("cars.car_id, cd.detail_id, cd.make, cd.model, cd.year, cd.mileage, "+
			"cd.last_maintenance_checkup, cd.last_oil_change, cd.purchase_date, cd.last_brake_pad_change").
		Joins("LEFT JOIN car_details cd ON cd.car_id = cars.car_id").
		Where("cars.user_uuid = ?", userUUID).
		Order("cars.car_id").
		Scan(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// CreateCarForUser inserts a car and its details row in one transaction.
// The details row is created even when the input is empty, so the car
// always comes back fully joined from ListUserCars.
func (r *CarRepository) CreateCarForUser(ctx context.Context, userUUID uuid.UUID, input CarDetailsInput) (*models.CarDetails, error) {
	var details models.CarDetails
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("uuid = ?", userUUID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		car := models.Car{UserUUID: userUUID}
		if err := tx.Create(&car).Error; err != nil {
			return err
		}

		details = input.Record(car.CarID)
		return tx.Create(&details).Error
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_uuid", userUUID.String()).Int("car_id", details.CarID).Msg("Car created")
	return &details, nil
}

// DeleteCarForUser removes the car after checking it belongs to the user.
// Details and error rows go with it via ON DELETE CASCADE.
func (r *CarRepository) DeleteCarForUser(ctx context.Context, userUUID uuid.UUID, carID int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		car, err := ownedCar(tx, userUUID, carID)
		if err != nil {
			return err
		}
		return tx.Delete(car).Error
	})
	if err != nil {
		if errors.Is(err, ErrCarNotFound) {
			log.Warn().Str("user_uuid", userUUID.String()).Int("car_id", carID).Msg("Delete refused: car not found or not owned")
		}
		return err
	}
	log.Info().Str("user_uuid", userUUID.String()).Int("car_id", carID).Msg("Car deleted")
	return nil
}

// UpdateCarDetails applies a partial update to the car's details row,
// inserting one if none exists yet. Clients can PATCH incrementally
// without knowing whether the row exists; prior values survive untouched.
func (r *CarRepository) UpdateCarDetails(ctx context.Context, userUUID uuid.UUID, carID int, input CarDetailsInput) (*models.CarDetails, error) {
	var details models.CarDetails
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedCar(tx, userUUID, carID); err != nil {
			return err
		}

		updates := input.Updates()
		if len(updates) == 0 {
			return ErrNoValidFields
		}

		// The schema does not forbid a second details row per car; if one
		// ever shows up, the oldest row is treated as canonical.
		err := tx.Where("car_id = ?", carID).Order("detail_id").First(&details).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			details = input.Record(carID)
			return tx.Create(&details).Error
		case err != nil:
			return err
		}

		if err := tx.Model(&details).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&details, details.DetailID).Error
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func ownedCar(tx *gorm.DB, userUUID uuid.UUID, carID int) (*models.Car, error) {
	var car models.Car
	err := tx.Where("car_id = ? AND user_uuid = ?", carID, userUUID).First(&car).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}
