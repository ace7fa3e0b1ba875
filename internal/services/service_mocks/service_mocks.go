// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	models "finance-tracker/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockTransactionServiceInterface is a mock of TransactionServiceInterface interface.
type MockTransactionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionServiceInterfaceMockRecorder
}

// MockTransactionServiceInterfaceMockRecorder is the mock recorder for MockTransactionServiceInterface.
type MockTransactionServiceInterfaceMockRecorder struct {
	mock *MockTransactionServiceInterface
}

// NewMockTransactionServiceInterface creates a new mock instance.
func NewMockTransactionServiceInterface(ctrl *gomock.Controller) *MockTransactionServiceInterface {
	mock := &MockTransactionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionServiceInterface) EXPECT() *MockTransactionServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateTransaction mocks base method.
func (m *MockTransactionServiceInterface) CreateTransaction(transaction *models.Transaction) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransaction", transaction)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTransaction indicates an expected call of CreateTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) CreateTransaction(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).CreateTransaction), transaction)
}

// DeleteTransaction mocks base method.
func (m *MockTransactionServiceInterface) DeleteTransaction(ownerID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTransaction", ownerID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) DeleteTransaction(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).DeleteTransaction), ownerID, id)
}

// GetTransaction mocks base method.
func (m *MockTransactionServiceInterface) GetTransaction(ownerID, id uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransaction", ownerID, id)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransaction indicates an expected call of GetTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) GetTransaction(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).GetTransaction), ownerID, id)
}

// ListTransactions mocks base method.
func (m *MockTransactionServiceInterface) ListTransactions(ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", ownerID, filters)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockTransactionServiceInterfaceMockRecorder) ListTransactions(ownerID, filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockTransactionServiceInterface)(nil).ListTransactions), ownerID, filters)
}

// UpdateTransaction mocks base method.
func (m *MockTransactionServiceInterface) UpdateTransaction(transaction *models.Transaction) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTransaction", transaction)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTransaction indicates an expected call of UpdateTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) UpdateTransaction(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).UpdateTransaction), transaction)
}

// MockBudgetServiceInterface is a mock of BudgetServiceInterface interface.
type MockBudgetServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBudgetServiceInterfaceMockRecorder
}

// MockBudgetServiceInterfaceMockRecorder is the mock recorder for MockBudgetServiceInterface.
type MockBudgetServiceInterfaceMockRecorder struct {
	mock *MockBudgetServiceInterface
}

// NewMockBudgetServiceInterface creates a new mock instance.
func NewMockBudgetServiceInterface(ctrl *gomock.Controller) *MockBudgetServiceInterface {
	mock := &MockBudgetServiceInterface{ctrl: ctrl}
	mock.recorder = &MockBudgetServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBudgetServiceInterface) EXPECT() *MockBudgetServiceInterfaceMockRecorder {
	return m.recorder
}

// GetBudget mocks base method.
func (m *MockBudgetServiceInterface) GetBudget(ownerID uuid.UUID) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBudget", ownerID)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBudget indicates an expected call of GetBudget.
func (mr *MockBudgetServiceInterfaceMockRecorder) GetBudget(ownerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBudget", reflect.TypeOf((*MockBudgetServiceInterface)(nil).GetBudget), ownerID)
}

// SyncSpending mocks base method.
func (m *MockBudgetServiceInterface) SyncSpending(ownerID uuid.UUID, now time.Time) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncSpending", ownerID, now)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SyncSpending indicates an expected call of SyncSpending.
func (mr *MockBudgetServiceInterfaceMockRecorder) SyncSpending(ownerID, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncSpending", reflect.TypeOf((*MockBudgetServiceInterface)(nil).SyncSpending), ownerID, now)
}

// UpsertBudget mocks base method.
func (m *MockBudgetServiceInterface) UpsertBudget(budget *models.Budget) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertBudget", budget)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpsertBudget indicates an expected call of UpsertBudget.
func (mr *MockBudgetServiceInterfaceMockRecorder) UpsertBudget(budget interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertBudget", reflect.TypeOf((*MockBudgetServiceInterface)(nil).UpsertBudget), budget)
}

// MockGoalServiceInterface is a mock of GoalServiceInterface interface.
type MockGoalServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockGoalServiceInterfaceMockRecorder
}

// MockGoalServiceInterfaceMockRecorder is the mock recorder for MockGoalServiceInterface.
type MockGoalServiceInterfaceMockRecorder struct {
	mock *MockGoalServiceInterface
}

// NewMockGoalServiceInterface creates a new mock instance.
func NewMockGoalServiceInterface(ctrl *gomock.Controller) *MockGoalServiceInterface {
	mock := &MockGoalServiceInterface{ctrl: ctrl}
	mock.recorder = &MockGoalServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGoalServiceInterface) EXPECT() *MockGoalServiceInterfaceMockRecorder {
	return m.recorder
}

// Contribute mocks base method.
func (m *MockGoalServiceInterface) Contribute(ownerID, goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contribute", ownerID, goalID, amount)
	ret0, _ := ret[0].(*models.Goal)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Contribute indicates an expected call of Contribute.
func (mr *MockGoalServiceInterfaceMockRecorder) Contribute(ownerID, goalID, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contribute", reflect.TypeOf((*MockGoalServiceInterface)(nil).Contribute), ownerID, goalID, amount)
}

// CreateGoal mocks base method.
func (m *MockGoalServiceInterface) CreateGoal(ownerID uuid.UUID, name string, target decimal.Decimal, deadline time.Time) (*models.Goal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateGoal", ownerID, name, target, deadline)
	ret0, _ := ret[0].(*models.Goal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateGoal indicates an expected call of CreateGoal.
func (mr *MockGoalServiceInterfaceMockRecorder) CreateGoal(ownerID, name, target, deadline interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateGoal", reflect.TypeOf((*MockGoalServiceInterface)(nil).CreateGoal), ownerID, name, target, deadline)
}

// DeleteGoal mocks base method.
func (m *MockGoalServiceInterface) DeleteGoal(ownerID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteGoal", ownerID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteGoal indicates an expected call of DeleteGoal.
func (mr *MockGoalServiceInterfaceMockRecorder) DeleteGoal(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteGoal", reflect.TypeOf((*MockGoalServiceInterface)(nil).DeleteGoal), ownerID, id)
}

// GetGoal mocks base method.
func (m *MockGoalServiceInterface) GetGoal(ownerID, id uuid.UUID) (*models.Goal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGoal", ownerID, id)
	ret0, _ := ret[0].(*models.Goal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGoal indicates an expected call of GetGoal.
func (mr *MockGoalServiceInterfaceMockRecorder) GetGoal(ownerID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGoal", reflect.TypeOf((*MockGoalServiceInterface)(nil).GetGoal), ownerID, id)
}

// ListGoals mocks base method.
func (m *MockGoalServiceInterface) ListGoals(ownerID uuid.UUID) ([]models.Goal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListGoals", ownerID)
	ret0, _ := ret[0].([]models.Goal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListGoals indicates an expected call of ListGoals.
func (mr *MockGoalServiceInterfaceMockRecorder) ListGoals(ownerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListGoals", reflect.TypeOf((*MockGoalServiceInterface)(nil).ListGoals), ownerID)
}

// MockInsightsServiceInterface is a mock of InsightsServiceInterface interface.
type MockInsightsServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInsightsServiceInterfaceMockRecorder
}

// MockInsightsServiceInterfaceMockRecorder is the mock recorder for MockInsightsServiceInterface.
type MockInsightsServiceInterfaceMockRecorder struct {
	mock *MockInsightsServiceInterface
}

// NewMockInsightsServiceInterface creates a new mock instance.
func NewMockInsightsServiceInterface(ctrl *gomock.Controller) *MockInsightsServiceInterface {
	mock := &MockInsightsServiceInterface{ctrl: ctrl}
	mock.recorder = &MockInsightsServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInsightsServiceInterface) EXPECT() *MockInsightsServiceInterfaceMockRecorder {
	return m.recorder
}

// ComputeInsights mocks base method.
func (m *MockInsightsServiceInterface) ComputeInsights(ownerID uuid.UUID, startDate, endDate time.Time) (*models.SpendingInsights, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComputeInsights", ownerID, startDate, endDate)
	ret0, _ := ret[0].(*models.SpendingInsights)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ComputeInsights indicates an expected call of ComputeInsights.
func (mr *MockInsightsServiceInterfaceMockRecorder) ComputeInsights(ownerID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComputeInsights", reflect.TypeOf((*MockInsightsServiceInterface)(nil).ComputeInsights), ownerID, startDate, endDate)
}

// MockProjectionServiceInterface is a mock of ProjectionServiceInterface interface.
type MockProjectionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockProjectionServiceInterfaceMockRecorder
}

// MockProjectionServiceInterfaceMockRecorder is the mock recorder for MockProjectionServiceInterface.
type MockProjectionServiceInterfaceMockRecorder struct {
	mock *MockProjectionServiceInterface
}

// NewMockProjectionServiceInterface creates a new mock instance.
func NewMockProjectionServiceInterface(ctrl *gomock.Controller) *MockProjectionServiceInterface {
	mock := &MockProjectionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockProjectionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProjectionServiceInterface) EXPECT() *MockProjectionServiceInterfaceMockRecorder {
	return m.recorder
}

// ComputeProjection mocks base method.
func (m *MockProjectionServiceInterface) ComputeProjection(ownerID uuid.UUID, now time.Time) (*models.SpendingProjection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComputeProjection", ownerID, now)
	ret0, _ := ret[0].(*models.SpendingProjection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ComputeProjection indicates an expected call of ComputeProjection.
func (mr *MockProjectionServiceInterfaceMockRecorder) ComputeProjection(ownerID, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComputeProjection", reflect.TypeOf((*MockProjectionServiceInterface)(nil).ComputeProjection), ownerID, now)
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

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", user)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), user)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// MockSampleDataGeneratorInterface is a mock of SampleDataGeneratorInterface interface.
type MockSampleDataGeneratorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSampleDataGeneratorInterfaceMockRecorder
}

// MockSampleDataGeneratorInterfaceMockRecorder is the mock recorder for MockSampleDataGeneratorInterface.
type MockSampleDataGeneratorInterfaceMockRecorder struct {
	mock *MockSampleDataGeneratorInterface
}

// NewMockSampleDataGeneratorInterface creates a new mock instance.
func NewMockSampleDataGeneratorInterface(ctrl *gomock.Controller) *MockSampleDataGeneratorInterface {
	mock := &MockSampleDataGeneratorInterface{ctrl: ctrl}
	mock.recorder = &MockSampleDataGeneratorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSampleDataGeneratorInterface) EXPECT() *MockSampleDataGeneratorInterfaceMockRecorder {
	return m.recorder
}

// GenerateAmount mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateAmount(category string) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAmount", category)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// GenerateAmount indicates an expected call of GenerateAmount.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateAmount(category interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAmount", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateAmount), category)
}

// GenerateDailyPurchases mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateDailyPurchases(ownerID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateDailyPurchases", ownerID, startDate, endDate, count)
	ret0, _ := ret[0].([]*models.Transaction)
	return ret0
}

// GenerateDailyPurchases indicates an expected call of GenerateDailyPurchases.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateDailyPurchases(ownerID, startDate, endDate, count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateDailyPurchases", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateDailyPurchases), ownerID, startDate, endDate, count)
}

// GenerateHistory mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateHistory(ownerID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateHistory", ownerID, startDate, endDate, count)
	ret0, _ := ret[0].([]*models.Transaction)
	return ret0
}

// GenerateHistory indicates an expected call of GenerateHistory.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateHistory(ownerID, startDate, endDate, count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateHistory", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateHistory), ownerID, startDate, endDate, count)
}

// GenerateMonthlyPayments mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateMonthlyPayments(ownerID uuid.UUID, startDate, endDate time.Time) []*models.Transaction {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateMonthlyPayments", ownerID, startDate, endDate)
	ret0, _ := ret[0].([]*models.Transaction)
	return ret0
}

// GenerateMonthlyPayments indicates an expected call of GenerateMonthlyPayments.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateMonthlyPayments(ownerID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateMonthlyPayments", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateMonthlyPayments), ownerID, startDate, endDate)
}

// GenerateTimestamp mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateTimestamp", startDate, endDate)
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// GenerateTimestamp indicates an expected call of GenerateTimestamp.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateTimestamp(startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateTimestamp", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateTimestamp), startDate, endDate)
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
