package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReferenceHandler_Root(t *testing.T) {
	h := NewReferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["message"] != "Namaz Vakitleri API" || resp["version"] != "1.0" {
		t.Errorf("root response = %v", resp)
	}
}

func TestReferenceHandler_TurkishCities(t *testing.T) {
	h := NewReferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/cities/turkey", nil)
	rec := httptest.NewRecorder()
	h.TurkishCities(rec, req)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if !resp.Success {
		t.Error("success = false, want true")
	}
	if len(resp.Data) != 30 {
		t.Fatalf("city count = %d, want 30", len(resp.Data))
	}
	for _, city := range resp.Data {
		if city.Name == "" || city.Latitude == 0 || city.Longitude == 0 {
			t.Errorf("incomplete city entry: %+v", city)
		}
	}
	if resp.Data[0].Name != "İstanbul" {
		t.Errorf("first city = %q, want İstanbul", resp.Data[0].Name)
	}
}

func TestReferenceHandler_WorldCities(t *testing.T) {
	h := NewReferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/cities/world", nil)
	rec := httptest.NewRecorder()
	h.WorldCities(rec, req)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if len(resp.Data) != 20 {
		t.Fatalf("city count = %d, want 20", len(resp.Data))
	}
	for _, city := range resp.Data {
		if city.Name == "" || city.Country == "" {
			t.Errorf("incomplete city entry: %+v", city)
		}
	}
}

func TestReferenceHandler_CalculationMethods(t *testing.T) {
	h := NewReferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/calculation-methods", nil)
	rec := httptest.NewRecorder()
	h.CalculationMethods(rec, req)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID     int    `json:"id"`
			Name   string `json:"name"`
			NameTr string `json:"name_tr"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if len(resp.Data) != 14 {
		t.Fatalf("method count = %d, want 14", len(resp.Data))
	}

	foundDiyanet := false
	for _, m := range resp.Data {
		if m.Name == "" || m.NameTr == "" {
			t.Errorf("incomplete method entry: %+v", m)
		}
		if m.ID == 13 {
			foundDiyanet = true
			if m.NameTr != "Diyanet İşleri Başkanlığı" {
				t.Errorf("method 13 name_tr = %q", m.NameTr)
			}
		}
	}
	if !foundDiyanet {
		t.Error("method id 13 (Diyanet) missing from list")
	}
}
