package service

import (
	"mime/multipart"
	"time"

	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/global"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// testLogger swallows all output so service tests stay quiet.
type testLogger struct{}

func (l *testLogger) Init(debug bool)                     {}
func (l *testLogger) ShutdownCallback() global.Callable   { return nil }
func (l *testLogger) Debug(msg string, v ...interface{})  {}
func (l *testLogger) DebugF(msg string, v ...interface{}) {}
func (l *testLogger) Info(msg string, v ...interface{})   {}
func (l *testLogger) InfoF(msg string, v ...interface{})  {}
func (l *testLogger) Warn(msg string, v ...interface{})   {}
func (l *testLogger) WarnF(msg string, v ...interface{})  {}
func (l *testLogger) Error(msg string, v ...interface{})  {}
func (l *testLogger) ErrorF(msg string, v ...interface{}) {}
func (l *testLogger) Fatal(msg string, v ...interface{})  {}
func (l *testLogger) FatalF(msg string, v ...interface{}) {}

func testHttpConfig() *c.HttpServerConfig {
	return &c.HttpServerConfig{
		JWT: &c.JWTConfig{
			AccessSecret:    "access-secret-for-tests",
			AccessDuration:  30 * time.Minute,
			RefreshSecret:   "refresh-secret-for-tests",
			RefreshDuration: 168 * time.Hour,
		},
		Limits: &c.HttpServerLimit{
			RateLimit:         15,
			RateLimitDuration: time.Minute,
			UsernameLengthMin: 3,
			UsernameLengthMax: 32,
			PasswordLengthMin: 6,
			PasswordLengthMax: 64,
			TailNoLengthMax:   16,
		},
	}
}

type MockUserOperation struct {
	mock.Mock
}

func (m *MockUserOperation) GetUserByUid(uid uint) (*operation.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.User), args.Error(1)
}

func (m *MockUserOperation) GetUserByUsername(username string) (*operation.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.User), args.Error(1)
}

func (m *MockUserOperation) GetUsers() ([]*operation.User, error) {
	args := m.Called()
	return args.Get(0).([]*operation.User), args.Error(1)
}

func (m *MockUserOperation) NewUser(username, password string, level operation.AuthLevel) (*operation.User, error) {
	args := m.Called(username, password, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.User), args.Error(1)
}

func (m *MockUserOperation) AddUser(user *operation.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserOperation) UpdateUserInfo(user *operation.User, info map[string]interface{}) error {
	args := m.Called(user, info)
	return args.Error(0)
}

func (m *MockUserOperation) UpdateUserPassword(user *operation.User, newPassword string) error {
	args := m.Called(user, newPassword)
	return args.Error(0)
}

func (m *MockUserOperation) DeleteUser(user *operation.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserOperation) VerifyUserPassword(user *operation.User, password string) bool {
	args := m.Called(user, password)
	return args.Bool(0)
}

func (m *MockUserOperation) IsUsernameTaken(tx *gorm.DB, username string) (bool, error) {
	args := m.Called(tx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserOperation) HasAdminUser() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

type MockFlightOperation struct {
	mock.Mock
}

func (m *MockFlightOperation) GetFlightById(id uint) (*operation.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Flight), args.Error(1)
}

func (m *MockFlightOperation) GetFlights(query *operation.FlightQuery) ([]*operation.Flight, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.Flight), args.Error(1)
}

func (m *MockFlightOperation) AddFlight(flight *operation.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightOperation) SaveFlight(flight *operation.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightOperation) UpdateFlightInfo(flight *operation.Flight, info map[string]interface{}) error {
	args := m.Called(flight, info)
	return args.Error(0)
}

func (m *MockFlightOperation) DeleteFlight(flight *operation.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightOperation) DeleteFlightsByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockAircraftOperation struct {
	mock.Mock
}

func (m *MockAircraftOperation) GetAircraftById(id uint) (*operation.Aircraft, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Aircraft), args.Error(1)
}

func (m *MockAircraftOperation) GetAircraftByTailNo(tailNo string) (*operation.Aircraft, error) {
	args := m.Called(tailNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Aircraft), args.Error(1)
}

func (m *MockAircraftOperation) GetAircraftList(userID uint) ([]*operation.Aircraft, error) {
	args := m.Called(userID)
	return args.Get(0).([]*operation.Aircraft), args.Error(1)
}

func (m *MockAircraftOperation) AddAircraft(aircraft *operation.Aircraft) error {
	args := m.Called(aircraft)
	return args.Error(0)
}

func (m *MockAircraftOperation) SaveAircraft(aircraft *operation.Aircraft) error {
	args := m.Called(aircraft)
	return args.Error(0)
}

func (m *MockAircraftOperation) UpdateAircraftHobbs(aircraft *operation.Aircraft, hobbs float64) error {
	args := m.Called(aircraft, hobbs)
	return args.Error(0)
}

func (m *MockAircraftOperation) DeleteAircraft(aircraft *operation.Aircraft) error {
	args := m.Called(aircraft)
	return args.Error(0)
}

type MockImageOperation struct {
	mock.Mock
}

func (m *MockImageOperation) GetImageById(id uint) (*operation.Image, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Image), args.Error(1)
}

func (m *MockImageOperation) GetImagesByUser(userID uint) ([]*operation.Image, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.Image), args.Error(1)
}

func (m *MockImageOperation) AddImage(image *operation.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageOperation) DeleteImage(image *operation.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageOperation) DeleteImagesByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockTokenOperation struct {
	mock.Mock
}

func (m *MockTokenOperation) RevokeToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockTokenOperation) IsTokenRevoked(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}

type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	args := m.Called(file)
	var info *StoreInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*StoreInfo)
	}
	var status *ApiStatus
	if args.Get(1) != nil {
		status = args.Get(1).(*ApiStatus)
	}
	return info, status
}

func (m *MockStoreService) DeleteImageFile(storePath, remotePath string) *ApiStatus {
	args := m.Called(storePath, remotePath)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*ApiStatus)
}

func (m *MockStoreService) AccessPath(remotePath string) string {
	args := m.Called(remotePath)
	return args.String(0)
}
