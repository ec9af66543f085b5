package repository

import "github.com/willyg23/predictive-car-maintenance-SD/models"

// CarDetailsInput is the typed partial update for a car's details. Only
// the eight recognized attributes exist as fields, so unknown JSON keys
// drop at decode time instead of reaching the storage layer.
type CarDetailsInput struct {
	Make                   *string      `json:"make"`
	Model                  *string      `json:"model"`
	Year                   *int         `json:"year"`
	Mileage                *int         `json:"mileage"`
	LastMaintenanceCheckup *models.Date `json:"last_maintenance_checkup"`
	LastOilChange          *models.Date `json:"last_oil_change"`
	PurchaseDate           *models.Date `json:"purchase_date"`
	LastBrakePadChange     *models.Date `json:"last_brake_pad_change"`
}

// Updates folds the set fields into a column map for a partial UPDATE.
func (in CarDetailsInput) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Make != nil {
		updates["make"] = *in.Make
	}
	if in.Model != nil {
		updates["model"] = *in.Model
	}
	if in.Year != nil {
		updates["year"] = *in.Year
	}
	if in.Mileage != nil {
		updates["mileage"] = *in.Mileage
	}
	if in.LastMaintenanceCheckup != nil {
		updates["last_maintenance_checkup"] = *in.LastMaintenanceCheckup
	}
	if in.LastOilChange != nil {
		updates["last_oil_change"] = *in.LastOilChange
	}
	if in.PurchaseDate != nil {
		updates["purchase_date"] = *in.PurchaseDate
	}
	if in.LastBrakePadChange != nil {
		updates["last_brake_pad_change"] = *in.LastBrakePadChange
	}
	return updates
}

// Record builds a full details row for carID; unset fields stay NULL.
func (in CarDetailsInput) Record(carID int) models.CarDetails {
	return models.CarDetails{
		CarID:                  carID,
		Make:                   in.Make,
		Model:                  in.Model,
		Year:                   in.Year,
		Mileage:                in.Mileage,
		LastMaintenanceCheckup: in.LastMaintenanceCheckup,
		LastOilChange:          in.LastOilChange,
		PurchaseDate:           in.PurchaseDate,
		LastBrakePadChange:     in.LastBrakePadChange,
	}
}
