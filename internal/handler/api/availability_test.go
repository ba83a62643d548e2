//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"homefix-scheduling/internal/handler/api"
	resdto "homefix-scheduling/internal/handler/dto/response"
	"homefix-scheduling/internal/usecase/queries"
	"homefix-scheduling/tests/common/httptest"
	queriesmock "homefix-scheduling/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockQueries      *queriesmock.MockAppointmentQueries
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability, s.mockQueries)

	s.router.GET("/availability", s.handler.GetAvailability)
	s.router.GET("/resources/:id/appointments", s.handler.ListResourceDay)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	resourceID := uuid.New()
	url := "/availability?resourceId=" + resourceID.String() + "&date=2025-06-03"

	s.Run("success: returns free slots in order", func() {
		view := &queries.AvailabilityView{
			ResourceID:  resourceID,
			ServiceDate: "2025-06-03",
			Slots:       []string{"09:00", "11:00"},
		}
		s.mockAvailability.EXPECT().GetAvailableSlots(gomock.Any(), resourceID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"09:00", "11:00"}, body.Slots)
		s.Equal("2025-06-03", body.ServiceDate)
	})

	s.Run("success: fully booked day serializes as empty array", func() {
		view := &queries.AvailabilityView{
			ResourceID:  resourceID,
			ServiceDate: "2025-06-03",
			Slots:       []string{},
		}
		s.mockAvailability.EXPECT().GetAvailableSlots(gomock.Any(), resourceID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	s.Run("error: 400 on bad resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?resourceId=xyz&date=2025-06-03", nil, "")
		httptest.AssertWrappedErrorResponse(s.T(), rec, http.StatusBadRequest, "resource id")
	})

	s.Run("error: 400 on bad date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?resourceId="+resourceID.String()+"&date=03-06-2025", nil, "")
		httptest.AssertWrappedErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})

	s.Run("error: 400 on missing parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil, "")
		httptest.AssertWrappedErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AvailabilityHandlerTestSuite) TestListResourceDay() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String() + "/appointments?date=2025-06-03"

	s.Run("success: lists the day's appointments", func() {
		view := &queries.AppointmentView{
			ID:          uuid.New(),
			ResourceID:  resourceID,
			CustomerID:  uuid.New(),
			ServiceDate: "2025-06-03",
			Slot:        "10:00",
			Status:      "confirmed",
		}
		s.mockQueries.EXPECT().ListByResourceDay(gomock.Any(), resourceID, gomock.Any()).
			Return([]*queries.AppointmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("10:00", body[0].Slot)
	})

	s.Run("error: 400 on missing date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+resourceID.String()+"/appointments", nil, "")
		httptest.AssertWrappedErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})
}
