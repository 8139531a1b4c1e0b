// Package operation
package operation

import "errors"

var (
	// ErrAircraftNotFound no aircraft matches the lookup
	ErrAircraftNotFound = errors.New("aircraft does not exist")
	// ErrTailNoTaken tail number uniqueness pre-check failed
	ErrTailNoTaken = errors.New("tail number already taken")
)

// CategoryClasses is the fixed category to class mapping for aircraft.
// A class outside its category's list is rejected at validation time.
var CategoryClasses = map[string][]string{
	"Airplane": {
		"Single-Engine Land",
		"Multi-Engine Land",
		"Single-Engine Sea",
		"Multi-Engine Sea",
	},
	"Rotorcraft": {
		"Helicopter",
		"Gyroplane",
	},
	"Powered Lift": {
		"Powered Lift",
	},
	"Glider": {
		"Glider",
	},
	"Lighter-Than-Air": {
		"Airship",
		"Balloon",
	},
	"Powered Parachute": {
		"Powered Parachute Land",
		"Powered Parachute Sea",
	},
	"Weight-Shift Control": {
		"Weight-Shift Control Land",
		"Weight-Shift Control Sea",
	},
}

// ValidCategoryClass reports whether the class belongs to the category.
func ValidCategoryClass(category, class string) bool {
	classes, ok := CategoryClasses[category]
	if !ok {
		return false
	}
	for _, c := range classes {
		if c == class {
			return true
		}
	}
	return false
}

// AircraftOperationInterface is the aircraft collection access contract.
type AircraftOperationInterface interface {
	// GetAircraftById fetches an aircraft by primary key, valid when err is nil
	GetAircraftById(id uint) (aircraft *Aircraft, err error)
	// GetAircraftByTailNo fetches an aircraft by its unique tail number
	GetAircraftByTailNo(tailNo string) (aircraft *Aircraft, err error)
	// GetAircraftList lists aircraft, optionally restricted to one owner (userID > 0)
	GetAircraftList(userID uint) (aircraft []*Aircraft, err error)
	// AddAircraft persists a new aircraft after the tail number pre-check
	AddAircraft(aircraft *Aircraft) (err error)
	// SaveAircraft writes the full aircraft row back
	SaveAircraft(aircraft *Aircraft) (err error)
	// UpdateAircraftHobbs stores a new hobbs meter reading
	UpdateAircraftHobbs(aircraft *Aircraft, hobbs float64) (err error)
	// DeleteAircraft removes the aircraft row
	DeleteAircraft(aircraft *Aircraft) (err error)
}
