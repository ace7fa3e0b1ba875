package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GoalHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockGoalServiceInterface
	handler     *GoalHandler
	userID      uuid.UUID
	goalID      uuid.UUID
}

func TestGoalHandlerSuite(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}

func (s *GoalHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockService = service_mocks.NewMockGoalServiceInterface(s.ctrl)
	s.handler = NewGoalHandler(s.mockService)
	s.userID = uuid.New()
	s.goalID = uuid.New()
}

func (s *GoalHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GoalHandlerTestSuite) newContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *GoalHandlerTestSuite) sampleGoal() *models.Goal {
	return &models.Goal{
		ID:       s.goalID,
		OwnerID:  s.userID,
		Name:     "Holiday fund",
		Target:   decimal.NewFromInt(1000),
		Saved:    decimal.NewFromInt(250),
		Deadline: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:   models.GoalStatusActive,
	}
}

func (s *GoalHandlerTestSuite) TestListGoals_Success() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/goals", "")

	s.mockService.EXPECT().
		ListGoals(s.userID).
		Return([]models.Goal{*s.sampleGoal()}, nil)

	err := s.handler.ListGoals(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Holiday fund")
}

func (s *GoalHandlerTestSuite) TestGetGoal_Success() {
	c, rec := s.newContext(http.MethodGet, fmt.Sprintf("/api/v1/goals/%s", s.goalID), "")
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	s.mockService.EXPECT().
		GetGoal(s.userID, s.goalID).
		Return(s.sampleGoal(), nil)

	err := s.handler.GetGoal(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"progress":"25.00"`)
}

func (s *GoalHandlerTestSuite) TestGetGoal_NotFound() {
	c, rec := s.newContext(http.MethodGet, fmt.Sprintf("/api/v1/goals/%s", s.goalID), "")
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	s.mockService.EXPECT().
		GetGoal(s.userID, s.goalID).
		Return(nil, repositories.ErrGoalNotFound)

	err := s.handler.GetGoal(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "GOAL_001")
}

func (s *GoalHandlerTestSuite) TestCreateGoal_Success() {
	body := `{"name":"Holiday fund","target":"1000","deadline":"2025-12-31"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/goals", body)

	s.mockService.EXPECT().
		CreateGoal(s.userID, "Holiday fund", gomock.Any(), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)).
		DoAndReturn(func(ownerID uuid.UUID, name string, target decimal.Decimal, deadline time.Time) (*models.Goal, error) {
			s.True(target.Equal(decimal.NewFromInt(1000)))
			goal := s.sampleGoal()
			goal.Saved = decimal.Zero
			return goal, nil
		})

	err := s.handler.CreateGoal(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *GoalHandlerTestSuite) TestCreateGoal_ZeroTarget() {
	body := `{"name":"Holiday fund","target":"0","deadline":"2025-12-31"}`
	c, _ := s.newContext(http.MethodPost, "/api/v1/goals", body)

	err := s.handler.CreateGoal(c)

	// positive_amount rule rejects before the service is reached
	s.Error(err)
}

func (s *GoalHandlerTestSuite) TestCreateGoal_InvalidDeadline() {
	body := `{"name":"Holiday fund","target":"1000","deadline":"end of year"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/goals", body)

	err := s.handler.CreateGoal(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *GoalHandlerTestSuite) TestContribute_Success() {
	body := `{"amount":"100"}`
	c, rec := s.newContext(http.MethodPost, fmt.Sprintf("/api/v1/goals/%s/contributions", s.goalID), body)
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	goal := s.sampleGoal()
	goal.Saved = decimal.NewFromInt(350)

	s.mockService.EXPECT().
		Contribute(s.userID, s.goalID, gomock.Any()).
		Return(goal, false, nil)

	err := s.handler.Contribute(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"achieved":false`)
	s.NotContains(rec.Body.String(), "Congratulations")
}

func (s *GoalHandlerTestSuite) TestContribute_CompletesGoal() {
	body := `{"amount":"750"}`
	c, rec := s.newContext(http.MethodPost, fmt.Sprintf("/api/v1/goals/%s/contributions", s.goalID), body)
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	goal := s.sampleGoal()
	goal.Saved = goal.Target
	goal.Status = models.GoalStatusAchieved

	s.mockService.EXPECT().
		Contribute(s.userID, s.goalID, gomock.Any()).
		Return(goal, true, nil)

	err := s.handler.Contribute(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"achieved":true`)
	s.Contains(rec.Body.String(), "Congratulations")
}

func (s *GoalHandlerTestSuite) TestContribute_ExceedsTarget() {
	body := `{"amount":"10000"}`
	c, rec := s.newContext(http.MethodPost, fmt.Sprintf("/api/v1/goals/%s/contributions", s.goalID), body)
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	s.mockService.EXPECT().
		Contribute(s.userID, s.goalID, gomock.Any()).
		Return(nil, false, models.ErrExceedsTarget)

	err := s.handler.Contribute(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "GOAL_003")
}

func (s *GoalHandlerTestSuite) TestContribute_AlreadyAchieved() {
	body := `{"amount":"10"}`
	c, rec := s.newContext(http.MethodPost, fmt.Sprintf("/api/v1/goals/%s/contributions", s.goalID), body)
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	s.mockService.EXPECT().
		Contribute(s.userID, s.goalID, gomock.Any()).
		Return(nil, false, models.ErrGoalAchieved)

	err := s.handler.Contribute(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "GOAL_004")
}

func (s *GoalHandlerTestSuite) TestContribute_NonPositiveAmount() {
	body := `{"amount":"-10"}`
	c, _ := s.newContext(http.MethodPost, fmt.Sprintf("/api/v1/goals/%s/contributions", s.goalID), body)
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	err := s.handler.Contribute(c)

	s.Error(err)
}

func (s *GoalHandlerTestSuite) TestDeleteGoal_Success() {
	c, rec := s.newContext(http.MethodDelete, fmt.Sprintf("/api/v1/goals/%s", s.goalID), "")
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	s.mockService.EXPECT().
		DeleteGoal(s.userID, s.goalID).
		Return(nil)

	err := s.handler.DeleteGoal(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *GoalHandlerTestSuite) TestDeleteGoal_NotFound() {
	c, rec := s.newContext(http.MethodDelete, fmt.Sprintf("/api/v1/goals/%s", s.goalID), "")
	c.SetParamNames("id")
	c.SetParamValues(s.goalID.String())

	s.mockService.EXPECT().
		DeleteGoal(s.userID, s.goalID).
		Return(repositories.ErrGoalNotFound)

	err := s.handler.DeleteGoal(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
