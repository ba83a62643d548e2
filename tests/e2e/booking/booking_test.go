//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	gohttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	resdto "homefix-scheduling/internal/handler/dto/response"
	"homefix-scheduling/internal/usecase/commands"
	"homefix-scheduling/tests/common/httptest"
	"homefix-scheduling/tests/e2e"
	jwtHelper "homefix-scheduling/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	availabilityURL = "/api/availability"
)

type bookingSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.Config.JWT)
}

func (s *bookingSuite) customerToken(userID uuid.UUID) string {
	return s.jwtHelper.GenerateToken(s.T(), userID, commands.RoleCustomer)
}

func (s *bookingSuite) operatorToken() string {
	return s.jwtHelper.GenerateToken(s.T(), uuid.New(), commands.RoleOperator)
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func bookBody(resourceID uuid.UUID, date, slot string) map[string]any {
	return map[string]any{
		"resource_id": resourceID,
		"date":        date,
		"slot":        slot,
		"notes":       "Boiler inspection",
	}
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("booked slot leaves availability and returns after cancel", func() {
		resourceID := uuid.New()
		customerID := uuid.New()
		token := s.customerToken(customerID)
		date := futureDate()

		availURL := fmt.Sprintf("%s?resourceId=%s&date=%s", availabilityURL, resourceID, date)

		var before resdto.AvailabilityResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &before)
		s.Require().Contains(before.Slots, "09:00")

		var booked resdto.AppointmentResponse
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(resourceID, date, "09:00"), token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		s.Equal("pending", booked.Status)
		s.Equal("09:00", booked.Slot)

		var after resdto.AvailabilityResponse
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &after)
		s.NotContains(after.Slots, "09:00")
		s.Len(after.Slots, len(before.Slots)-1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			appointmentsURL+"/"+booked.ID.String(), nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		var released resdto.AvailabilityResponse
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &released)
		s.Contains(released.Slots, "09:00")
	})

	s.Run("double booking the same slot conflicts", func() {
		resourceID := uuid.New()
		date := futureDate()
		first := s.customerToken(uuid.New())
		second := s.customerToken(uuid.New())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(resourceID, date, "10:00"), first)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(resourceID, date, "10:00"), second)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("same slot on another resource is independent", func() {
		date := futureDate()
		token := s.customerToken(uuid.New())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(uuid.New(), date, "10:30"), token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(uuid.New(), date, "10:30"), token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("past date is rejected", func() {
		token := s.customerToken(uuid.New())
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(uuid.New(), yesterday, "09:00"), token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "past")
	})

	s.Run("availability for a past date is empty", func() {
		token := s.customerToken(uuid.New())
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		var view resdto.AvailabilityResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("%s?resourceId=%s&date=%s", availabilityURL, uuid.New(), yesterday), nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Empty(view.Slots)
	})

	s.Run("off-grid slot is rejected", func() {
		token := s.customerToken(uuid.New())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(uuid.New(), futureDate(), "09:15"), token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("unauthenticated booking is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(uuid.New(), futureDate(), "09:00"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *bookingSuite) TestLifecycle() {
	book := func(token string) resdto.AppointmentResponse {
		var booked resdto.AppointmentResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(uuid.New(), futureDate(), "11:00"), token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		return booked
	}

	setStatus := func(id uuid.UUID, status, token string) *gohttptest.ResponseRecorder {
		return httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			appointmentsURL+"/"+id.String()+"/status", map[string]string{"status": status}, token)
	}

	s.Run("operator walks the full lifecycle", func() {
		customerID := uuid.New()
		booked := book(s.customerToken(customerID))
		op := s.operatorToken()

		for _, status := range []string{"confirmed", "in_progress", "completed"} {
			var updated resdto.AppointmentResponse
			rec := setStatus(booked.ID, status, op)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
			s.Equal(status, updated.Status)
		}

		// completed is terminal
		rec := setStatus(booked.ID, "cancelled", op)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "transition")
	})

	s.Run("lifecycle may not skip steps", func() {
		booked := book(s.customerToken(uuid.New()))

		rec := setStatus(booked.ID, "completed", s.operatorToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "transition")
	})

	s.Run("customers may not drive the lifecycle", func() {
		customerID := uuid.New()
		token := s.customerToken(customerID)
		booked := book(token)

		rec := setStatus(booked.ID, "confirmed", token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("customer may cancel only their own appointment", func() {
		ownerID := uuid.New()
		booked := book(s.customerToken(ownerID))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			appointmentsURL+"/"+booked.ID.String(), nil, s.customerToken(uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			appointmentsURL+"/"+booked.ID.String(), nil, s.customerToken(ownerID))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("cancelled slot can be booked again", func() {
		resourceID := uuid.New()
		date := futureDate()
		token := s.customerToken(uuid.New())

		var booked resdto.AppointmentResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(resourceID, date, "14:00"), token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			appointmentsURL+"/"+booked.ID.String(), nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			bookBody(resourceID, date, "14:00"), s.customerToken(uuid.New()))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})
}

// The core booking guarantee: N identical concurrent requests produce
// exactly one appointment.
func (s *bookingSuite) TestConcurrentBooking() {
	const attempts = 50

	resourceID := uuid.New()
	date := futureDate()

	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			token := s.jwtHelper.GenerateToken(s.T(), uuid.New(), commands.RoleCustomer)
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
				bookBody(resourceID, date, "15:00"), token)
			codes[idx] = rec.Code
		}(i)
	}
	wg.Wait()

	created, conflicted, other := 0, 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		default:
			other++
		}
	}

	s.Equal(1, created, "exactly one booking may win the slot")
	s.Equal(attempts-1, conflicted, "every loser must see a conflict")
	s.Zero(other, "no other status codes expected, got %v", codes)

	var count int
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM appointments WHERE resource_id = $1 AND slot_start = '15:00'", resourceID).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count, "the ledger must hold a single row for the slot")
}
