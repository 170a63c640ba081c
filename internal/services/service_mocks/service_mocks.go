// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	forecast "chequemate/internal/forecast"
	models "chequemate/internal/models"
	services "chequemate/internal/services"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockForecastServiceInterface is a mock of ForecastServiceInterface interface.
type MockForecastServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockForecastServiceInterfaceMockRecorder
}

// MockForecastServiceInterfaceMockRecorder is the mock recorder for MockForecastServiceInterface.
type MockForecastServiceInterfaceMockRecorder struct {
	mock *MockForecastServiceInterface
}

// NewMockForecastServiceInterface creates a new mock instance.
func NewMockForecastServiceInterface(ctrl *gomock.Controller) *MockForecastServiceInterface {
	mock := &MockForecastServiceInterface{ctrl: ctrl}
	mock.recorder = &MockForecastServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockForecastServiceInterface) EXPECT() *MockForecastServiceInterfaceMockRecorder {
	return m.recorder
}

// GetBufferedProjection mocks base method.
func (m *MockForecastServiceInterface) GetBufferedProjection(userID, accountID uuid.UUID, start, end time.Time, leadingDays, trailingDays int) (*forecast.ProjectionResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBufferedProjection", userID, accountID, start, end, leadingDays, trailingDays)
	ret0, _ := ret[0].(*forecast.ProjectionResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBufferedProjection indicates an expected call of GetBufferedProjection.
func (mr *MockForecastServiceInterfaceMockRecorder) GetBufferedProjection(userID, accountID, start, end, leadingDays, trailingDays interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBufferedProjection", reflect.TypeOf((*MockForecastServiceInterface)(nil).GetBufferedProjection), userID, accountID, start, end, leadingDays, trailingDays)
}

// GetCurrentBalance mocks base method.
func (m *MockForecastServiceInterface) GetCurrentBalance(userID, accountID uuid.UUID) (decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrentBalance", userID, accountID)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCurrentBalance indicates an expected call of GetCurrentBalance.
func (mr *MockForecastServiceInterfaceMockRecorder) GetCurrentBalance(userID, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrentBalance", reflect.TypeOf((*MockForecastServiceInterface)(nil).GetCurrentBalance), userID, accountID)
}

// GetDayDetail mocks base method.
func (m *MockForecastServiceInterface) GetDayDetail(userID, accountID uuid.UUID, start, end, date time.Time) (*forecast.DayProjection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDayDetail", userID, accountID, start, end, date)
	ret0, _ := ret[0].(*forecast.DayProjection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDayDetail indicates an expected call of GetDayDetail.
func (mr *MockForecastServiceInterfaceMockRecorder) GetDayDetail(userID, accountID, start, end, date interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDayDetail", reflect.TypeOf((*MockForecastServiceInterface)(nil).GetDayDetail), userID, accountID, start, end, date)
}

// GetMonthProjection mocks base method.
func (m *MockForecastServiceInterface) GetMonthProjection(userID, accountID uuid.UUID, ref time.Time) (*forecast.ProjectionResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMonthProjection", userID, accountID, ref)
	ret0, _ := ret[0].(*forecast.ProjectionResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMonthProjection indicates an expected call of GetMonthProjection.
func (mr *MockForecastServiceInterfaceMockRecorder) GetMonthProjection(userID, accountID, ref interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMonthProjection", reflect.TypeOf((*MockForecastServiceInterface)(nil).GetMonthProjection), userID, accountID, ref)
}

// GetProjection mocks base method.
func (m *MockForecastServiceInterface) GetProjection(userID, accountID uuid.UUID, start, end time.Time) (*forecast.ProjectionResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProjection", userID, accountID, start, end)
	ret0, _ := ret[0].(*forecast.ProjectionResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProjection indicates an expected call of GetProjection.
func (mr *MockForecastServiceInterfaceMockRecorder) GetProjection(userID, accountID, start, end interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProjection", reflect.TypeOf((*MockForecastServiceInterface)(nil).GetProjection), userID, accountID, start, end)
}

// GetQuickProjection mocks base method.
func (m *MockForecastServiceInterface) GetQuickProjection(userID, accountID uuid.UUID, quickKind string) (*forecast.ProjectionResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetQuickProjection", userID, accountID, quickKind)
	ret0, _ := ret[0].(*forecast.ProjectionResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetQuickProjection indicates an expected call of GetQuickProjection.
func (mr *MockForecastServiceInterfaceMockRecorder) GetQuickProjection(userID, accountID, quickKind interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetQuickProjection", reflect.TypeOf((*MockForecastServiceInterface)(nil).GetQuickProjection), userID, accountID, quickKind)
}

// MockSettlementServiceInterface is a mock of SettlementServiceInterface interface.
type MockSettlementServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSettlementServiceInterfaceMockRecorder
}

// MockSettlementServiceInterfaceMockRecorder is the mock recorder for MockSettlementServiceInterface.
type MockSettlementServiceInterfaceMockRecorder struct {
	mock *MockSettlementServiceInterface
}

// NewMockSettlementServiceInterface creates a new mock instance.
func NewMockSettlementServiceInterface(ctrl *gomock.Controller) *MockSettlementServiceInterface {
	mock := &MockSettlementServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSettlementServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSettlementServiceInterface) EXPECT() *MockSettlementServiceInterfaceMockRecorder {
	return m.recorder
}

// SettleDue mocks base method.
func (m *MockSettlementServiceInterface) SettleDue() (*services.SettlementResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SettleDue")
	ret0, _ := ret[0].(*services.SettlementResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SettleDue indicates an expected call of SettleDue.
func (mr *MockSettlementServiceInterfaceMockRecorder) SettleDue() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SettleDue", reflect.TypeOf((*MockSettlementServiceInterface)(nil).SettleDue))
}

// SettleDueForUser mocks base method.
func (m *MockSettlementServiceInterface) SettleDueForUser(userID uuid.UUID) (*services.SettlementResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SettleDueForUser", userID)
	ret0, _ := ret[0].(*services.SettlementResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SettleDueForUser indicates an expected call of SettleDueForUser.
func (mr *MockSettlementServiceInterfaceMockRecorder) SettleDueForUser(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SettleDueForUser", reflect.TypeOf((*MockSettlementServiceInterface)(nil).SettleDueForUser), userID)
}

// MockInstrumentServiceInterface is a mock of InstrumentServiceInterface interface.
type MockInstrumentServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInstrumentServiceInterfaceMockRecorder
}

// MockInstrumentServiceInterfaceMockRecorder is the mock recorder for MockInstrumentServiceInterface.
type MockInstrumentServiceInterfaceMockRecorder struct {
	mock *MockInstrumentServiceInterface
}

// NewMockInstrumentServiceInterface creates a new mock instance.
func NewMockInstrumentServiceInterface(ctrl *gomock.Controller) *MockInstrumentServiceInterface {
	mock := &MockInstrumentServiceInterface{ctrl: ctrl}
	mock.recorder = &MockInstrumentServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInstrumentServiceInterface) EXPECT() *MockInstrumentServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateInstrument mocks base method.
func (m *MockInstrumentServiceInterface) CreateInstrument(userID uuid.UUID, instrument *models.Instrument) (*models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateInstrument", userID, instrument)
	ret0, _ := ret[0].(*models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateInstrument indicates an expected call of CreateInstrument.
func (mr *MockInstrumentServiceInterfaceMockRecorder) CreateInstrument(userID, instrument interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateInstrument", reflect.TypeOf((*MockInstrumentServiceInterface)(nil).CreateInstrument), userID, instrument)
}

// DeleteInstrument mocks base method.
func (m *MockInstrumentServiceInterface) DeleteInstrument(userID, instrumentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteInstrument", userID, instrumentID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteInstrument indicates an expected call of DeleteInstrument.
func (mr *MockInstrumentServiceInterfaceMockRecorder) DeleteInstrument(userID, instrumentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteInstrument", reflect.TypeOf((*MockInstrumentServiceInterface)(nil).DeleteInstrument), userID, instrumentID)
}

// GetInstrumentByID mocks base method.
func (m *MockInstrumentServiceInterface) GetInstrumentByID(userID, instrumentID uuid.UUID) (*models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstrumentByID", userID, instrumentID)
	ret0, _ := ret[0].(*models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetInstrumentByID indicates an expected call of GetInstrumentByID.
func (mr *MockInstrumentServiceInterfaceMockRecorder) GetInstrumentByID(userID, instrumentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstrumentByID", reflect.TypeOf((*MockInstrumentServiceInterface)(nil).GetInstrumentByID), userID, instrumentID)
}

// ListInstruments mocks base method.
func (m *MockInstrumentServiceInterface) ListInstruments(userID uuid.UUID, filters models.InstrumentFilters, offset, limit int) ([]models.Instrument, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListInstruments", userID, filters, offset, limit)
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListInstruments indicates an expected call of ListInstruments.
func (mr *MockInstrumentServiceInterfaceMockRecorder) ListInstruments(userID, filters, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListInstruments", reflect.TypeOf((*MockInstrumentServiceInterface)(nil).ListInstruments), userID, filters, offset, limit)
}

// UpdateInstrument mocks base method.
func (m *MockInstrumentServiceInterface) UpdateInstrument(userID, instrumentID uuid.UUID, updates services.InstrumentUpdates) (*models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateInstrument", userID, instrumentID, updates)
	ret0, _ := ret[0].(*models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateInstrument indicates an expected call of UpdateInstrument.
func (mr *MockInstrumentServiceInterfaceMockRecorder) UpdateInstrument(userID, instrumentID, updates interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateInstrument", reflect.TypeOf((*MockInstrumentServiceInterface)(nil).UpdateInstrument), userID, instrumentID, updates)
}

// UpdateInstrumentStatus mocks base method.
func (m *MockInstrumentServiceInterface) UpdateInstrumentStatus(userID, instrumentID uuid.UUID, status string) (*models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateInstrumentStatus", userID, instrumentID, status)
	ret0, _ := ret[0].(*models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateInstrumentStatus indicates an expected call of UpdateInstrumentStatus.
func (mr *MockInstrumentServiceInterfaceMockRecorder) UpdateInstrumentStatus(userID, instrumentID, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateInstrumentStatus", reflect.TypeOf((*MockInstrumentServiceInterface)(nil).UpdateInstrumentStatus), userID, instrumentID, status)
}

// MockAccountServiceInterface is a mock of AccountServiceInterface interface.
type MockAccountServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceInterfaceMockRecorder
}

// MockAccountServiceInterfaceMockRecorder is the mock recorder for MockAccountServiceInterface.
type MockAccountServiceInterfaceMockRecorder struct {
	mock *MockAccountServiceInterface
}

// NewMockAccountServiceInterface creates a new mock instance.
func NewMockAccountServiceInterface(ctrl *gomock.Controller) *MockAccountServiceInterface {
	mock := &MockAccountServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAccountServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountServiceInterface) EXPECT() *MockAccountServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateAccount mocks base method.
func (m *MockAccountServiceInterface) CreateAccount(userID uuid.UUID, name, bankName, currency string, openingBalance decimal.Decimal) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccount", userID, name, bankName, currency, openingBalance)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) CreateAccount(userID, name, bankName, currency, openingBalance interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).CreateAccount), userID, name, bankName, currency, openingBalance)
}

// DeleteAccount mocks base method.
func (m *MockAccountServiceInterface) DeleteAccount(userID, accountID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAccount", userID, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAccount indicates an expected call of DeleteAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) DeleteAccount(userID, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).DeleteAccount), userID, accountID)
}

// GetAccountByID mocks base method.
func (m *MockAccountServiceInterface) GetAccountByID(userID, accountID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccountByID", userID, accountID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccountByID indicates an expected call of GetAccountByID.
func (mr *MockAccountServiceInterfaceMockRecorder) GetAccountByID(userID, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccountByID", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetAccountByID), userID, accountID)
}

// GetUserAccounts mocks base method.
func (m *MockAccountServiceInterface) GetUserAccounts(userID uuid.UUID) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserAccounts", userID)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserAccounts indicates an expected call of GetUserAccounts.
func (mr *MockAccountServiceInterfaceMockRecorder) GetUserAccounts(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserAccounts", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetUserAccounts), userID)
}

// UpdateAccount mocks base method.
func (m *MockAccountServiceInterface) UpdateAccount(userID, accountID uuid.UUID, name, bankName *string) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAccount", userID, accountID, name, bankName)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateAccount indicates an expected call of UpdateAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) UpdateAccount(userID, accountID, name, bankName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).UpdateAccount), userID, accountID, name, bankName)
}

// MockAuthServiceInterface is a mock of AuthServiceInterface interface.
type MockAuthServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceInterfaceMockRecorder
}

// MockAuthServiceInterfaceMockRecorder is the mock recorder for MockAuthServiceInterface.
type MockAuthServiceInterfaceMockRecorder struct {
	mock *MockAuthServiceInterface
}

// NewMockAuthServiceInterface creates a new mock instance.
func NewMockAuthServiceInterface(ctrl *gomock.Controller) *MockAuthServiceInterface {
	mock := &MockAuthServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuthServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthServiceInterface) EXPECT() *MockAuthServiceInterfaceMockRecorder {
	return m.recorder
}

// GetUserByID mocks base method.
func (m *MockAuthServiceInterface) GetUserByID(userID uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByID", userID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByID indicates an expected call of GetUserByID.
func (mr *MockAuthServiceInterfaceMockRecorder) GetUserByID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByID", reflect.TypeOf((*MockAuthServiceInterface)(nil).GetUserByID), userID)
}

// Login mocks base method.
func (m *MockAuthServiceInterface) Login(email, password string) (*models.User, string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", email, password)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(time.Time)
	ret3, _ := ret[3].(error)
	return ret0, ret1, ret2, ret3
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceInterfaceMockRecorder) Login(email, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthServiceInterface)(nil).Login), email, password)
}

// Register mocks base method.
func (m *MockAuthServiceInterface) Register(email, password, fullName, timezone string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", email, password, fullName, timezone)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockAuthServiceInterfaceMockRecorder) Register(email, password, fullName, timezone interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthServiceInterface)(nil).Register), email, password, fullName, timezone)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateToken mocks base method.
func (m *MockTokenServiceInterface) GenerateToken(user *models.User) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateToken", user)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateToken indicates an expected call of GenerateToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateToken(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateToken), user)
}

// ValidateToken mocks base method.
func (m *MockTokenServiceInterface) ValidateToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateToken indicates an expected call of ValidateToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateToken), tokenString)
}

// MockPasswordServiceInterface is a mock of PasswordServiceInterface interface.
type MockPasswordServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPasswordServiceInterfaceMockRecorder
}

// MockPasswordServiceInterfaceMockRecorder is the mock recorder for MockPasswordServiceInterface.
type MockPasswordServiceInterfaceMockRecorder struct {
	mock *MockPasswordServiceInterface
}

// NewMockPasswordServiceInterface creates a new mock instance.
func NewMockPasswordServiceInterface(ctrl *gomock.Controller) *MockPasswordServiceInterface {
	mock := &MockPasswordServiceInterface{ctrl: ctrl}
	mock.recorder = &MockPasswordServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPasswordServiceInterface) EXPECT() *MockPasswordServiceInterfaceMockRecorder {
	return m.recorder
}

// ComparePassword mocks base method.
func (m *MockPasswordServiceInterface) ComparePassword(password, hash string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComparePassword", password, hash)
	ret0, _ := ret[0].(bool)
	return ret0
}

// ComparePassword indicates an expected call of ComparePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ComparePassword(password, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComparePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ComparePassword), password, hash)
}

// HashPassword mocks base method.
func (m *MockPasswordServiceInterface) HashPassword(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashPassword", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HashPassword indicates an expected call of HashPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) HashPassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).HashPassword), password)
}

// ValidatePassword mocks base method.
func (m *MockPasswordServiceInterface) ValidatePassword(password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidatePassword", password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidatePassword indicates an expected call of ValidatePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ValidatePassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidatePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ValidatePassword), password)
}

// MockStatementServiceInterface is a mock of StatementServiceInterface interface.
type MockStatementServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStatementServiceInterfaceMockRecorder
}

// MockStatementServiceInterfaceMockRecorder is the mock recorder for MockStatementServiceInterface.
type MockStatementServiceInterfaceMockRecorder struct {
	mock *MockStatementServiceInterface
}

// NewMockStatementServiceInterface creates a new mock instance.
func NewMockStatementServiceInterface(ctrl *gomock.Controller) *MockStatementServiceInterface {
	mock := &MockStatementServiceInterface{ctrl: ctrl}
	mock.recorder = &MockStatementServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStatementServiceInterface) EXPECT() *MockStatementServiceInterfaceMockRecorder {
	return m.recorder
}

// GenerateStatement mocks base method.
func (m *MockStatementServiceInterface) GenerateStatement(userID, accountID uuid.UUID, periodType string, year, period int) (*models.ForecastStatement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateStatement", userID, accountID, periodType, year, period)
	ret0, _ := ret[0].(*models.ForecastStatement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateStatement indicates an expected call of GenerateStatement.
func (mr *MockStatementServiceInterfaceMockRecorder) GenerateStatement(userID, accountID, periodType, year, period interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateStatement", reflect.TypeOf((*MockStatementServiceInterface)(nil).GenerateStatement), userID, accountID, periodType, year, period)
}

// GetMonthlyBreakdown mocks base method.
func (m *MockStatementServiceInterface) GetMonthlyBreakdown(userID, accountID uuid.UUID, year int) (*models.MonthlyBreakdown, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMonthlyBreakdown", userID, accountID, year)
	ret0, _ := ret[0].(*models.MonthlyBreakdown)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMonthlyBreakdown indicates an expected call of GetMonthlyBreakdown.
func (mr *MockStatementServiceInterfaceMockRecorder) GetMonthlyBreakdown(userID, accountID, year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMonthlyBreakdown", reflect.TypeOf((*MockStatementServiceInterface)(nil).GetMonthlyBreakdown), userID, accountID, year)
}

// GetSummaryTotals mocks base method.
func (m *MockStatementServiceInterface) GetSummaryTotals(userID, accountID uuid.UUID) (*models.AccountSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSummaryTotals", userID, accountID)
	ret0, _ := ret[0].(*models.AccountSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSummaryTotals indicates an expected call of GetSummaryTotals.
func (mr *MockStatementServiceInterfaceMockRecorder) GetSummaryTotals(userID, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSummaryTotals", reflect.TypeOf((*MockStatementServiceInterface)(nil).GetSummaryTotals), userID, accountID)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementCounter mocks base method.
func (m *MockMetricsRecorderInterface) IncrementCounter(name string, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementCounter", name, tags)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementCounter(name, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementCounter), name, tags)
}

// RecordGauge mocks base method.
func (m *MockMetricsRecorderInterface) RecordGauge(name string, value float64, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordGauge", name, value, tags)
}

// RecordGauge indicates an expected call of RecordGauge.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordGauge(name, value, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordGauge", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordGauge), name, value, tags)
}

// RecordProcessingTime mocks base method.
func (m *MockMetricsRecorderInterface) RecordProcessingTime(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordProcessingTime", name, duration)
}

// RecordProcessingTime indicates an expected call of RecordProcessingTime.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordProcessingTime(name, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordProcessingTime", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordProcessingTime), name, duration)
}
