package handler

import (
	"fmt"
	"net/http"
	"strconv"
)

// coordinatesFromQuery parses and range-checks the latitude/longitude query
// parameters. Validation happens here, before any upstream or database
// call is made.
func coordinatesFromQuery(r *http.Request) (float64, float64, error) {
	latStr := r.URL.Query().Get("latitude")
	lngStr := r.URL.Query().Get("longitude")
	if latStr == "" || lngStr == "" {
		return 0, 0, fmt.Errorf("latitude and longitude are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude must be a number between -90 and 90")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("longitude must be a number between -180 and 180")
	}

	return lat, lng, nil
}

// methodFromQuery parses the optional calculation method parameter,
// defaulting to 13 (Diyanet). The value is opaque to us; the provider
// decides whether it knows the method.
func methodFromQuery(r *http.Request) (int, error) {
	methodStr := r.URL.Query().Get("method")
	if methodStr == "" {
		return 13, nil
	}

	method, err := strconv.Atoi(methodStr)
	if err != nil || method < 0 {
		return 0, fmt.Errorf("method must be a non-negative integer")
	}

	return method, nil
}
