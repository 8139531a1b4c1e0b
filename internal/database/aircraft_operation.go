package database

import (
	"context"
	"errors"
	"time"

	. "github.com/flightline-dev/flightline/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AircraftOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAircraftOperation(db *gorm.DB, queryTimeout time.Duration) *AircraftOperation {
	return &AircraftOperation{db: db, queryTimeout: queryTimeout}
}

func (aircraftOperation *AircraftOperation) GetAircraftById(id uint) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *AircraftOperation) GetAircraftByTailNo(tailNo string) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("tail_no = ?", tailNo).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *AircraftOperation) GetAircraftList(userID uint) (aircraft []*Aircraft, err error) {
	aircraft = make([]*Aircraft, 0)
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	tx := aircraftOperation.db.WithContext(ctx).Model(&Aircraft{})
	if userID > 0 {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.Order("tail_no").Find(&aircraft).Error
	return
}

func (aircraftOperation *AircraftOperation) AddAircraft(aircraft *Aircraft) error {
	return aircraftOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
		defer cancel()

		var count int64
		if err := tx.WithContext(ctx).
			Model(&Aircraft{}).
			Where("tail_no = ?", aircraft.TailNo).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrTailNoTaken
		}

		return tx.WithContext(ctx).Create(aircraft).Error
	})
}

func (aircraftOperation *AircraftOperation) SaveAircraft(aircraft *Aircraft) error {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Save(aircraft).Error
}

func (aircraftOperation *AircraftOperation) UpdateAircraftHobbs(aircraft *Aircraft, hobbs float64) error {
	aircraft.Hobbs = hobbs
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Model(aircraft).Update("hobbs", hobbs).Error
}

func (aircraftOperation *AircraftOperation) DeleteAircraft(aircraft *Aircraft) error {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Delete(aircraft).Error
}
