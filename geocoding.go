package main

import (
	"fmt"
	"strconv"
)

// GeocodeResult is one candidate match from the geocoding service. The
// service reports coordinates as decimal strings.
type GeocodeResult struct {
	PlaceID     int64    `json:"place_id"`
	Licence     string   `json:"licence"`
	OSMType     string   `json:"osm_type"`
	OSMID       int64    `json:"osm_id"`
	BoundingBox []string `json:"boundingbox"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	Importance  float64  `json:"importance"`
}

// Coordinates parses the latitude/longitude strings of a geocoding match.
func (r GeocodeResult) Coordinates() (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}
	lon, err = strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}
	return lat, lon, nil
}
