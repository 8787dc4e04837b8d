package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Geographic coordinate bounds in degrees.
const (
	// LatitudeMin is the minimum valid latitude.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude.
	LongitudeMax float64 = 180
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via the NewLocation constructor.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point with validated coordinates and an
// optional free-form address. Location is an immutable value object; the zero
// value is invalid and fails validation - use NewLocation to create instances.
//
// The address is purely descriptive: it is stored and returned verbatim and
// never interpreted. No geometric processing is ever applied to locations;
// pickup, dropoff and route waypoints are recorded exactly as supplied.
//
// Example:
//
//	loc, err := kernel.NewLocation(36.8425, 10.2430, "Lac 1")
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	lat     float64
	lng     float64
	address string
	guard   guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates and an
// optional address (pass "" for none). Latitude must be within
// [LatitudeMin..LatitudeMax] and longitude within [LongitudeMin..LongitudeMax].
// Returns an error if either coordinate is outside its valid bounds.
func NewLocation(lat float64, lng float64, address string) (Location, error) {
	loc := Location{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed via NewLocation.
// The zero value of Location is invalid and fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// Address returns the descriptive address, or "" when none was supplied.
func (l Location) Address() string {
	return l.address
}

// String returns a human-readable representation of the Location.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	if l.address == "" {
		return fmt.Sprintf("Location(%g,%g)", l.lat, l.lng)
	}
	return fmt.Sprintf("Location(%g,%g,%s)", l.lat, l.lng, l.address)
}

// IsEqual compares two locations for equality. Two locations are equal when
// their coordinates and addresses match. Both locations must be properly
// constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// setLat sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so that construction can self-validate business requirements.
func (l *Location) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

// setLng sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so that construction can self-validate business requirements.
func (l *Location) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}
