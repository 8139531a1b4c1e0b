// Package service
package service

import (
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
)

type AircraftServiceInterface interface {
	CreateAircraft(req *RequestAircraftCreate) *ApiResponse[ResponseAircraftCreate]
	GetAircraft(req *RequestAircraft) *ApiResponse[ResponseAircraft]
	GetAircraftList(req *RequestAircraftList) *ApiResponse[ResponseAircraftList]
	GetAllAircraft(req *RequestAircraftListAll) *ApiResponse[ResponseAircraftList]
	EditAircraft(req *RequestAircraftEdit) *ApiResponse[ResponseAircraftEdit]
	DeleteAircraft(req *RequestAircraftDelete) *ApiResponse[ResponseAircraftDelete]
}

type RequestAircraftCreate struct {
	JwtHeader
	TailNo   string  `json:"tail_no"`
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Category string  `json:"aircraft_category"`
	Class    string  `json:"aircraft_class"`
	Hobbs    float64 `json:"hobbs"`
	Tach     float64 `json:"tach"`
}

type ResponseAircraftCreate operation.Aircraft

type RequestAircraft struct {
	JwtHeader
	AircraftID uint `param:"id"`
}

type ResponseAircraft operation.Aircraft

type RequestAircraftList struct {
	JwtHeader
}

type RequestAircraftListAll struct {
	JwtHeader
}

type ResponseAircraftList struct {
	Items []*operation.Aircraft `json:"items"`
	Total int                   `json:"total"`
}

type RequestAircraftEdit struct {
	JwtHeader
	AircraftID uint     `param:"id"`
	Make       *string  `json:"make"`
	Model      *string  `json:"model"`
	Category   *string  `json:"aircraft_category"`
	Class      *string  `json:"aircraft_class"`
	Hobbs      *float64 `json:"hobbs"`
	Tach       *float64 `json:"tach"`
}

type ResponseAircraftEdit operation.Aircraft

type RequestAircraftDelete struct {
	JwtHeader
	AircraftID uint `param:"id"`
}

type ResponseAircraftDelete bool
