package repository

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/models"
)

var (
	fakeCities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}
	fakeMakes  = []string{"Toyota", "Ford", "Honda", "Chevrolet", "Nissan"}
	fakeModels = []string{"Corolla", "F-150", "Civic", "Silverado", "Altima"}
)

// CreateFakeUser seeds a random user with 1-3 randomized cars in a single
// transaction and returns the new user's UUID. Demo/test data only.
func (r *CarRepository) CreateFakeUser(ctx context.Context) (uuid.UUID, error) {
	userUUID := uuid.New()
	numCars := rand.Intn(3) + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		location := fakeCities[rand.Intn(len(fakeCities))]
		user := models.User{
			UUID:     userUUID,
			Email:    randomEmail(),
			Location: &location,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		for i := 0; i < numCars; i++ {
			car := models.Car{UserUUID: userUUID}
			if err := tx.Create(&car).Error; err != nil {
				return err
			}
			details := randomCarDetails(car.CarID)
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	log.Info().Str("user_uuid", userUUID.String()).Int("cars", numCars).Msg("Fake user created")
	return userUUID, nil
}

func randomEmail() string {
	local := make([]byte, 8)
	for i := range local {
		local[i] = byte('a' + rand.Intn(26))
	}
	return string(local) + "@example.com"
}

func randomCarDetails(carID int) models.CarDetails {
	carMake := fakeMakes[rand.Intn(len(fakeMakes))]
	carModel := fakeModels[rand.Intn(len(fakeModels))]
	year := rand.Intn(24) + 2000
	mileage := rand.Intn(200001)
	return models.CarDetails{
		CarID:                  carID,
		Make:                   &carMake,
		Model:                  &carModel,
		Year:                   &year,
		Mileage:                &mileage,
		LastMaintenanceCheckup: daysAgo(30, 365),
		LastOilChange:          daysAgo(30, 180),
		PurchaseDate:           daysAgo(365, 3650),
		LastBrakePadChange:     daysAgo(30, 365),
	}
}

// daysAgo picks a date between min and max days in the past.
func daysAgo(min, max int) *models.Date {
	d := models.NewDate(time.Now().AddDate(0, 0, -(rand.Intn(max-min+1) + min)))
	return &d
}
