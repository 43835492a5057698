package vehicleservice

// VehicleStatus статус модерации транспортного средства
type VehicleStatus string

const (
	StatusApproved VehicleStatus = "approved"
	StatusPending  VehicleStatus = "pending"
	StatusRejected VehicleStatus = "rejected"
)

// Vehicle модель транспортного средства из VehicleService
type Vehicle struct {
	ID           int64         `json:"id"`
	OwnerID      int64         `json:"owner_id"`
	LicensePlate string        `json:"license_plate"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Status       VehicleStatus `json:"status"`
}

// IsApproved возвращает true, если транспорт прошел модерацию
// Только одобренный транспорт может бронировать места
func (v *Vehicle) IsApproved() bool {
	return v.Status == StatusApproved
}

// ErrorResponse модель ошибки от VehicleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
