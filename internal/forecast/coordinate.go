package forecast

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// NewCoordinate returns a Coordinate, rejecting values outside the valid ranges.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

func (c Coordinate) Validate() error {
	if err := validate.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid coordinate: %s %v out of range", fe.Field(), fe.Value())
		}
		return fmt.Errorf("invalid coordinate: %w", err)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
