package models

import "fmt"

// Location is a place returned by a city-name search.
type Location struct {
	Name    string  `json:"name" example:"London"`
	Region  string  `json:"region,omitempty" example:"City of London, Greater London"`
	Country string  `json:"country" example:"United Kingdom"`
	Lat     float64 `json:"lat,omitempty" example:"51.52"`
	Lon     float64 `json:"lon,omitempty" example:"-0.11"`
}

// Label is the "name, country" form shown in candidate lists.
func (l Location) Label() string {
	if l.Country == "" {
		return l.Name
	}
	return fmt.Sprintf("%s, %s", l.Name, l.Country)
}
