package views

import (
	"fmt"

	"github.com/addisfleet/transport-admin/internal/models"
)

// DefaultVehicles returns the fleet as shipped with the admin front end. No
// vehicle endpoints exist on the backend yet; the list lives client-side and
// only its status column is editable.
func DefaultVehicles() []models.Vehicle {
	return []models.Vehicle{
		{Name: "Toyota Hiace", PlateNumber: "3-A12345", Driver: "Getu Alemu", Capacity: 12, Status: models.VehicleActive},
		{Name: "Toyota Coaster", PlateNumber: "3-B54321", Driver: "Meseret Bekele", Capacity: 22, Status: models.VehicleActive},
		{Name: "Nissan Patrol", PlateNumber: "3-C11223", Driver: "Yonas Tesfaye", Capacity: 5, Status: models.VehicleService},
		{Name: "Isuzu NPR", PlateNumber: "3-D44556", Driver: "Hanna Girma", Capacity: 2, Status: models.VehicleMaintenance},
	}
}

// VehicleList is the vehicle table with an in-place status selector per row.
type VehicleList struct {
	vehicles []models.Vehicle
}

// NewVehicleList creates a vehicle list over the given fleet.
func NewVehicleList(vehicles []models.Vehicle) *VehicleList {
	return &VehicleList{vehicles: vehicles}
}

// Vehicles returns all rows.
func (l *VehicleList) Vehicles() []models.Vehicle {
	return l.vehicles
}

// StatusOptions returns the statuses the selector offers.
func (l *VehicleList) StatusOptions() []models.VehicleStatus {
	return models.VehicleStatuses()
}

// SetStatus changes the status of the vehicle with the given plate number.
func (l *VehicleList) SetStatus(plate string, status models.VehicleStatus) error {
	if !models.IsValidVehicleStatus(status) {
		return fmt.Errorf("invalid vehicle status %q", status)
	}

	for i := range l.vehicles {
		if l.vehicles[i].PlateNumber == plate {
			l.vehicles[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("no vehicle with plate %q", plate)
}
