// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "finance-tracker/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockTransactionRepositoryInterface is a mock of TransactionRepositoryInterface interface.
type MockTransactionRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryInterfaceMockRecorder
}

// MockTransactionRepositoryInterfaceMockRecorder is the mock recorder for MockTransactionRepositoryInterface.
type MockTransactionRepositoryInterfaceMockRecorder struct {
	mock *MockTransactionRepositoryInterface
}

// NewMockTransactionRepositoryInterface creates a new mock instance.
func NewMockTransactionRepositoryInterface(ctrl *gomock.Controller) *MockTransactionRepositoryInterface {
	mock := &MockTransactionRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionRepositoryInterface) EXPECT() *MockTransactionRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTransactionRepositoryInterface) Create(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Create(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Create), transaction)
}

// Delete mocks base method.
func (m *MockTransactionRepositoryInterface) Delete(ownerID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ownerID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Delete(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Delete), ownerID, id)
}

// GetByDateRange mocks base method.
func (m *MockTransactionRepositoryInterface) GetByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDateRange", ownerID, startDate, endDate)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDateRange indicates an expected call of GetByDateRange.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByDateRange(ownerID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDateRange", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByDateRange), ownerID, startDate, endDate)
}

// GetByID mocks base method.
func (m *MockTransactionRepositoryInterface) GetByID(ownerID, id uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ownerID, id)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByID(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByID), ownerID, id)
}

// ListByOwner mocks base method.
func (m *MockTransactionRepositoryInterface) ListByOwner(ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByOwner", ownerID, filters)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByOwner indicates an expected call of ListByOwner.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) ListByOwner(ownerID, filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByOwner", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).ListByOwner), ownerID, filters)
}

// Update mocks base method.
func (m *MockTransactionRepositoryInterface) Update(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Update(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Update), transaction)
}

// MockBudgetRepositoryInterface is a mock of BudgetRepositoryInterface interface.
type MockBudgetRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBudgetRepositoryInterfaceMockRecorder
}

// MockBudgetRepositoryInterfaceMockRecorder is the mock recorder for MockBudgetRepositoryInterface.
type MockBudgetRepositoryInterfaceMockRecorder struct {
	mock *MockBudgetRepositoryInterface
}

// NewMockBudgetRepositoryInterface creates a new mock instance.
func NewMockBudgetRepositoryInterface(ctrl *gomock.Controller) *MockBudgetRepositoryInterface {
	mock := &MockBudgetRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockBudgetRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBudgetRepositoryInterface) EXPECT() *MockBudgetRepositoryInterfaceMockRecorder {
	return m.recorder
}

// GetByOwner mocks base method.
func (m *MockBudgetRepositoryInterface) GetByOwner(ownerID uuid.UUID) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByOwner", ownerID)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByOwner indicates an expected call of GetByOwner.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) GetByOwner(ownerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByOwner", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).GetByOwner), ownerID)
}

// Upsert mocks base method.
func (m *MockBudgetRepositoryInterface) Upsert(budget *models.Budget) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", budget)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) Upsert(budget interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).Upsert), budget)
}

// MockGoalRepositoryInterface is a mock of GoalRepositoryInterface interface.
type MockGoalRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockGoalRepositoryInterfaceMockRecorder
}

// MockGoalRepositoryInterfaceMockRecorder is the mock recorder for MockGoalRepositoryInterface.
type MockGoalRepositoryInterfaceMockRecorder struct {
	mock *MockGoalRepositoryInterface
}

// NewMockGoalRepositoryInterface creates a new mock instance.
func NewMockGoalRepositoryInterface(ctrl *gomock.Controller) *MockGoalRepositoryInterface {
	mock := &MockGoalRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockGoalRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGoalRepositoryInterface) EXPECT() *MockGoalRepositoryInterfaceMockRecorder {
	return m.recorder
}

// ApplyContribution mocks base method.
func (m *MockGoalRepositoryInterface) ApplyContribution(ownerID, id uuid.UUID, amount decimal.Decimal) (*models.Goal, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyContribution", ownerID, id, amount)
	ret0, _ := ret[0].(*models.Goal)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ApplyContribution indicates an expected call of ApplyContribution.
func (mr *MockGoalRepositoryInterfaceMockRecorder) ApplyContribution(ownerID, id, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyContribution", reflect.TypeOf((*MockGoalRepositoryInterface)(nil).ApplyContribution), ownerID, id, amount)
}

// Create mocks base method.
func (m *MockGoalRepositoryInterface) Create(goal *models.Goal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", goal)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGoalRepositoryInterfaceMockRecorder) Create(goal interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGoalRepositoryInterface)(nil).Create), goal)
}

// Delete mocks base method.
func (m *MockGoalRepositoryInterface) Delete(ownerID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ownerID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGoalRepositoryInterfaceMockRecorder) Delete(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGoalRepositoryInterface)(nil).Delete), ownerID, id)
}

// GetByID mocks base method.
func (m *MockGoalRepositoryInterface) GetByID(ownerID, id uuid.UUID) (*models.Goal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ownerID, id)
	ret0, _ := ret[0].(*models.Goal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockGoalRepositoryInterfaceMockRecorder) GetByID(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockGoalRepositoryInterface)(nil).GetByID), ownerID, id)
}

// ListByOwner mocks base method.
func (m *MockGoalRepositoryInterface) ListByOwner(ownerID uuid.UUID) ([]models.Goal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByOwner", ownerID)
	ret0, _ := ret[0].([]models.Goal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByOwner indicates an expected call of ListByOwner.
func (mr *MockGoalRepositoryInterfaceMockRecorder) ListByOwner(ownerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByOwner", reflect.TypeOf((*MockGoalRepositoryInterface)(nil).ListByOwner), ownerID)
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
