package carControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx"

	"github.com/willyg23/predictive-car-maintenance-SD/models"
	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// GET /user/:uuid/cars/export
// Downloads the user's cars as an xlsx maintenance report.
func ExportUserCarsToExcel(repo *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUUID, err := uuid.Parse(c.Param("uuid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid user uuid"})
			return
		}

		cars, err := repo.ListUserCars(c.Request.Context(), userUUID)
		if err != nil {
			log.Error().Err(err).Str("user_uuid", userUUID.String()).Msg("Failed to fetch cars for export")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to fetch cars"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Cars")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to create Excel sheet"})
			return
		}

		headers := []string{
			"CarID", "DetailID", "Make", "Model", "Year", "Mileage",
			"LastMaintenanceCheckup", "LastOilChange", "PurchaseDate", "LastBrakePadChange",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, car := range cars {
			row := sheet.AddRow()
			row.AddCell().SetValue(car.CarID)
			row.AddCell().SetValue(intCell(car.DetailID))
			row.AddCell().SetValue(strCell(car.Make))
			row.AddCell().SetValue(strCell(car.Model))
			row.AddCell().SetValue(intCell(car.Year))
			row.AddCell().SetValue(intCell(car.Mileage))
			row.AddCell().SetValue(dateCell(car.LastMaintenanceCheckup))
			row.AddCell().SetValue(dateCell(car.LastOilChange))
			row.AddCell().SetValue(dateCell(car.PurchaseDate))
			row.AddCell().SetValue(dateCell(car.LastBrakePadChange))
		}

		c.Header("Content-Disposition", "attachment; filename=cars.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Error().Err(err).Msg("Failed to write Excel file")
		}
	}
}

func strCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intCell(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func dateCell(d *models.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
