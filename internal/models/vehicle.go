package models

// VehicleStatus represents the operational state of a fleet vehicle
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "Active"
	VehicleService     VehicleStatus = "Service"
	VehicleMaintenance VehicleStatus = "Maintenance"
)

// VehicleStatuses returns the statuses a vehicle can be switched to.
func VehicleStatuses() []VehicleStatus {
	return []VehicleStatus{VehicleActive, VehicleService, VehicleMaintenance}
}

// IsValidVehicleStatus checks if a vehicle status is valid
func IsValidVehicleStatus(status VehicleStatus) bool {
	switch status {
	case VehicleActive, VehicleService, VehicleMaintenance:
		return true
	default:
		return false
	}
}

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	Name        string        `json:"name"`
	PlateNumber string        `json:"plate_number"`
	Driver      string        `json:"driver"`
	Capacity    int           `json:"capacity"`
	Status      VehicleStatus `json:"status"`
}
