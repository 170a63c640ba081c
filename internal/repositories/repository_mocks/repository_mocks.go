// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	forecast "chequemate/internal/forecast"
	models "chequemate/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockInstrumentRepositoryInterface is a mock of InstrumentRepositoryInterface interface.
type MockInstrumentRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInstrumentRepositoryInterfaceMockRecorder
}

// MockInstrumentRepositoryInterfaceMockRecorder is the mock recorder for MockInstrumentRepositoryInterface.
type MockInstrumentRepositoryInterfaceMockRecorder struct {
	mock *MockInstrumentRepositoryInterface
}

// NewMockInstrumentRepositoryInterface creates a new mock instance.
func NewMockInstrumentRepositoryInterface(ctrl *gomock.Controller) *MockInstrumentRepositoryInterface {
	mock := &MockInstrumentRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockInstrumentRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInstrumentRepositoryInterface) EXPECT() *MockInstrumentRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockInstrumentRepositoryInterface) Create(instrument *models.Instrument) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", instrument)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) Create(instrument interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).Create), instrument)
}

// Delete mocks base method.
func (m *MockInstrumentRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).Delete), id)
}

// GetAllByAccountID mocks base method.
func (m *MockInstrumentRepositoryInterface) GetAllByAccountID(accountID uuid.UUID) ([]models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllByAccountID", accountID)
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllByAccountID indicates an expected call of GetAllByAccountID.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetAllByAccountID(accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllByAccountID", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetAllByAccountID), accountID)
}

// GetAllPending mocks base method.
func (m *MockInstrumentRepositoryInterface) GetAllPending() ([]models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllPending")
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllPending indicates an expected call of GetAllPending.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetAllPending() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllPending", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetAllPending))
}

// GetByAccountID mocks base method.
func (m *MockInstrumentRepositoryInterface) GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Instrument, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAccountID", accountID, offset, limit)
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByAccountID indicates an expected call of GetByAccountID.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetByAccountID(accountID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAccountID", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetByAccountID), accountID, offset, limit)
}

// GetByDueDateRange mocks base method.
func (m *MockInstrumentRepositoryInterface) GetByDueDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDueDateRange", accountID, startDate, endDate)
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDueDateRange indicates an expected call of GetByDueDateRange.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetByDueDateRange(accountID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDueDateRange", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetByDueDateRange), accountID, startDate, endDate)
}

// GetByID mocks base method.
func (m *MockInstrumentRepositoryInterface) GetByID(id uuid.UUID) (*models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetByID), id)
}

// GetByReference mocks base method.
func (m *MockInstrumentRepositoryInterface) GetByReference(reference string) (*models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByReference", reference)
	ret0, _ := ret[0].(*models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByReference indicates an expected call of GetByReference.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetByReference(reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByReference", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetByReference), reference)
}

// GetPendingByUserID mocks base method.
func (m *MockInstrumentRepositoryInterface) GetPendingByUserID(userID uuid.UUID) ([]models.Instrument, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPendingByUserID", userID)
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPendingByUserID indicates an expected call of GetPendingByUserID.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetPendingByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPendingByUserID", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetPendingByUserID), userID)
}

// GetWithFilters mocks base method.
func (m *MockInstrumentRepositoryInterface) GetWithFilters(filters models.InstrumentFilters, offset, limit int) ([]models.Instrument, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWithFilters", filters, offset, limit)
	ret0, _ := ret[0].([]models.Instrument)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetWithFilters indicates an expected call of GetWithFilters.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) GetWithFilters(filters, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWithFilters", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).GetWithFilters), filters, offset, limit)
}

// SettlePending mocks base method.
func (m *MockInstrumentRepositoryInterface) SettlePending(changes []forecast.StatusChange) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SettlePending", changes)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SettlePending indicates an expected call of SettlePending.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) SettlePending(changes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SettlePending", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).SettlePending), changes)
}

// Update mocks base method.
func (m *MockInstrumentRepositoryInterface) Update(instrument *models.Instrument) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", instrument)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockInstrumentRepositoryInterfaceMockRecorder) Update(instrument interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockInstrumentRepositoryInterface)(nil).Update), instrument)
}

// MockAccountRepositoryInterface is a mock of AccountRepositoryInterface interface.
type MockAccountRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountRepositoryInterfaceMockRecorder
}

// MockAccountRepositoryInterfaceMockRecorder is the mock recorder for MockAccountRepositoryInterface.
type MockAccountRepositoryInterfaceMockRecorder struct {
	mock *MockAccountRepositoryInterface
}

// NewMockAccountRepositoryInterface creates a new mock instance.
func NewMockAccountRepositoryInterface(ctrl *gomock.Controller) *MockAccountRepositoryInterface {
	mock := &MockAccountRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockAccountRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountRepositoryInterface) EXPECT() *MockAccountRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAccountRepositoryInterface) Create(account *models.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Create(account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Create), account)
}

// Delete mocks base method.
func (m *MockAccountRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Delete), id)
}

// GetByID mocks base method.
func (m *MockAccountRepositoryInterface) GetByID(id uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByID), id)
}

// GetByUserID mocks base method.
func (m *MockAccountRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByUserID), userID)
}

// Update mocks base method.
func (m *MockAccountRepositoryInterface) Update(account *models.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Update(account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Update), account)
}

// MockUserRepositoryInterface is a mock of UserRepositoryInterface interface.
type MockUserRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryInterfaceMockRecorder
}

// MockUserRepositoryInterfaceMockRecorder is the mock recorder for MockUserRepositoryInterface.
type MockUserRepositoryInterfaceMockRecorder struct {
	mock *MockUserRepositoryInterface
}

// NewMockUserRepositoryInterface creates a new mock instance.
func NewMockUserRepositoryInterface(ctrl *gomock.Controller) *MockUserRepositoryInterface {
	mock := &MockUserRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepositoryInterface) EXPECT() *MockUserRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockUserRepositoryInterface) Create(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryInterfaceMockRecorder) Create(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Create), user)
}

// GetByEmail mocks base method.
func (m *MockUserRepositoryInterface) GetByEmail(email string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmail", email)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmail indicates an expected call of GetByEmail.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmail(email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmail", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmail), email)
}

// GetByID mocks base method.
func (m *MockUserRepositoryInterface) GetByID(id uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByID), id)
}

// Update mocks base method.
func (m *MockUserRepositoryInterface) Update(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockUserRepositoryInterfaceMockRecorder) Update(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Update), user)
}
