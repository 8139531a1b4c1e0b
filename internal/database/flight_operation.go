package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/flightline-dev/flightline/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetFlightById(id uint) (flight *Flight, err error) {
	flight = &Flight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Preload("Photos").
		Where("id = ?", id).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}

func (flightOperation *FlightOperation) GetFlights(query *FlightQuery) (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()

	tx := flightOperation.db.WithContext(ctx).Model(&Flight{})
	if query.UserID > 0 {
		tx = tx.Where("user_id = ?", query.UserID)
	}
	if query.FilterField != "" {
		if _, ok := FlightFields[query.FilterField]; !ok {
			return nil, ErrUnknownField
		}
		tx = tx.Where(fmt.Sprintf("%s = ?", query.FilterField), query.FilterValue)
	}
	if query.StartDate != "" {
		tx = tx.Where("date >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		tx = tx.Where("date <= ?", query.EndDate)
	}
	sortField := query.SortField
	if sortField == "" {
		sortField = "date"
	} else if _, ok := FlightFields[sortField]; !ok {
		return nil, ErrUnknownField
	}
	order := sortField
	if query.Descending {
		order += " DESC"
	}
	err = tx.Order(order).Order("id").Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) AddFlight(flight *Flight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Create(flight).Error
}

func (flightOperation *FlightOperation) SaveFlight(flight *Flight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Save(flight).Error
}

func (flightOperation *FlightOperation) UpdateFlightInfo(flight *Flight, info map[string]interface{}) error {
	for field := range info {
		if _, ok := FlightFields[field]; !ok {
			return ErrUnknownField
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Model(flight).Updates(info).Error
}

func (flightOperation *FlightOperation) DeleteFlight(flight *Flight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Delete(flight).Error
}

func (flightOperation *FlightOperation) DeleteFlightsByUser(userID uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Flight{}).Error
}
