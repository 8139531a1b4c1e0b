// Package operation
package operation

type DatabaseOperations struct {
	userOperation     UserOperationInterface
	flightOperation   FlightOperationInterface
	aircraftOperation AircraftOperationInterface
	imageOperation    ImageOperationInterface
	tokenOperation    TokenOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	flightOperation FlightOperationInterface,
	aircraftOperation AircraftOperationInterface,
	imageOperation ImageOperationInterface,
	tokenOperation TokenOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		userOperation:     userOperation,
		flightOperation:   flightOperation,
		aircraftOperation: aircraftOperation,
		imageOperation:    imageOperation,
		tokenOperation:    tokenOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) AircraftOperation() AircraftOperationInterface {
	return db.aircraftOperation
}

func (db *DatabaseOperations) ImageOperation() ImageOperationInterface {
	return db.imageOperation
}

func (db *DatabaseOperations) TokenOperation() TokenOperationInterface {
	return db.tokenOperation
}
