package carControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/database"
	"github.com/willyg23/predictive-car-maintenance-SD/models"
	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	repo := repository.NewCarRepository(db)
	r := gin.New()
	r.GET("/user/:uuid/cars", GetUserCars(repo))
	r.POST("/user/:uuid/car/add_user_car", AddUserCar(repo))
	r.PUT("/user/:uuid/car/:car_id/details", UpdateCarDetails(repo))
	r.DELETE("/user/:uuid/car/:car_id", DeleteUserCar(repo))
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("parse response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := models.User{UUID: uuid.New(), Email: uuid.NewString() + "@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.UUID
}

func TestGetUserCars(t *testing.T) {
	r, db := setupRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/user/not-a-uuid/cars", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad uuid, got %d", w.Code)
	}

	w, body = doJSON(t, r, http.MethodGet, "/user/"+uuid.NewString()+"/cars", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown user, got %d", w.Code)
	}
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 0 {
		t.Fatalf("expected empty data array, got %v", body["data"])
	}

	owner := seedUser(t, db)
	if err := db.Create(&models.Car{UserUUID: owner}).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}
	w, body = doJSON(t, r, http.MethodGet, "/user/"+owner.String()+"/cars", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := body["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 car, got %d", len(data))
	}
	record := data[0].(map[string]interface{})
	if record["detail_id"] != nil || record["make"] != nil {
		t.Fatalf("detail-less car should render nulls, got %v", record)
	}
}

func TestAddUserCar(t *testing.T) {
	r, db := setupRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/user/"+uuid.NewString()+"/car/add_user_car", `{"make":"Toyota"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
	if body["status"] != "error" || body["message"] != "User not found" {
		t.Fatalf("unexpected envelope: %v", body)
	}

	owner := seedUser(t, db)

	w, _ = doJSON(t, r, http.MethodPost, "/user/"+owner.String()+"/car/add_user_car", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing body, got %d", w.Code)
	}

	// An empty object is as good as no body: nothing may be created.
	w, body = doJSON(t, r, http.MethodPost, "/user/"+owner.String()+"/car/add_user_car", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty object body, got %d", w.Code)
	}
	if body["message"] != "Missing car data in request body" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	var carCount int64
	if err := db.Model(&models.Car{}).Count(&carCount).Error; err != nil {
		t.Fatalf("count cars: %v", err)
	}
	if carCount != 0 {
		t.Fatalf("empty object must not create a car, got %d rows", carCount)
	}

	w, body = doJSON(t, r, http.MethodPost, "/user/"+owner.String()+"/car/add_user_car",
		`{"make":"Toyota","year":2020,"purchase_date":"2020-01-15"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", w.Code, body)
	}
	data := body["data"].(map[string]interface{})
	if data["make"] != "Toyota" || data["year"].(float64) != 2020 {
		t.Fatalf("unexpected created record: %v", data)
	}
	if data["purchase_date"] != "2020-01-15" {
		t.Fatalf("expected ISO date string, got %v", data["purchase_date"])
	}
	if data["mileage"] != nil {
		t.Fatalf("unsupplied fields must be null, got %v", data["mileage"])
	}
}

func TestUpdateCarDetails(t *testing.T) {
	r, db := setupRouter(t)
	owner := seedUser(t, db)

	w, _ := doJSON(t, r, http.MethodPut, "/user/"+owner.String()+"/car/999/details", `{"mileage":50000}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing car, got %d", w.Code)
	}

	car := models.Car{UserUUID: owner}
	if err := db.Create(&car).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}
	path := "/user/" + owner.String() + "/car/" + itoa(car.CarID) + "/details"

	w, _ = doJSON(t, r, http.MethodPut, path, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty field map, got %d", w.Code)
	}

	// Unrecognized keys drop at decode time, leaving nothing to update.
	w, _ = doJSON(t, r, http.MethodPut, path, `{"color":"red"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unrecognized fields, got %d", w.Code)
	}

	w, body := doJSON(t, r, http.MethodPut, path, `{"mileage":50000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", w.Code, body)
	}
	data := body["data"].(map[string]interface{})
	if data["mileage"].(float64) != 50000 || data["make"] != nil {
		t.Fatalf("expected mileage only, got %v", data)
	}

	w, body = doJSON(t, r, http.MethodPut, path, `{"make":"Honda"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data = body["data"].(map[string]interface{})
	if data["make"] != "Honda" || data["mileage"].(float64) != 50000 {
		t.Fatalf("prior values must survive, got %v", data)
	}

	// A different user cannot touch the same car.
	other := seedUser(t, db)
	w, _ = doJSON(t, r, http.MethodPut, "/user/"+other.String()+"/car/"+itoa(car.CarID)+"/details", `{"mileage":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign car, got %d", w.Code)
	}
}

func TestDeleteUserCar(t *testing.T) {
	r, db := setupRouter(t)
	owner := seedUser(t, db)
	car := models.Car{UserUUID: owner}
	if err := db.Create(&car).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}

	w, _ := doJSON(t, r, http.MethodDelete, "/user/"+uuid.NewString()+"/car/"+itoa(car.CarID), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign delete, got %d", w.Code)
	}

	w, body := doJSON(t, r, http.MethodDelete, "/user/"+owner.String()+"/car/"+itoa(car.CarID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["status"] != "success" {
		t.Fatalf("unexpected envelope: %v", body)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/user/"+owner.String()+"/car/"+itoa(car.CarID), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", w.Code)
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
