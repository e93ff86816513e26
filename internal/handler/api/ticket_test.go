//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinema-tickets/internal/handler/api"
	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/tests/common/builder"
	"cinema-tickets/tests/common/httptest"
	commandsmock "cinema-tickets/tests/mock/commands"
	queriesmock "cinema-tickets/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.TicketHandler
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/tickets/purchase", s.handler.Purchase)
	s.router.DELETE("/tickets/:id", s.handler.Cancel)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

func (s *TicketHandlerTestSuite) TestPurchase() {
	url := "/tickets/purchase"
	showtimeID := uuid.New()
	ticket := builder.NewTicketBuilder(showtimeID)
	reqBody := ticket.BuildPurchaseRequestDTO()
	view := ticket.BuildView()

	s.Run("success: returns 201 with the stored ticket", func() {
		s.mockCommands.EXPECT().ReserveTicket(gomock.Any(), reqBody.ToParams()).
			Return(ticket.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetTicket(gomock.Any(), ticket.ID).
			Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusCreated, rec.Code)
		var body resdto.TicketResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(ticket.ID, body.ID)
		s.Equal(ticket.TotalPrice, body.TotalPrice)
		s.True(body.IsPaid)
	})

	s.Run("missing target returns 400", func() {
		noTarget := reqBody
		noTarget.ShowtimeID = nil
		noTarget.EventID = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, noTarget)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed body returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"customer_email": "not-an-email",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error mapping", func() {
		tests := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown showtime", err: errs.ErrShowtimeNotFound, expectCode: http.StatusNotFound},
			{name: "insufficient availability", err: errs.ErrInsufficientAvailability, expectCode: http.StatusConflict},
			{name: "invalid quantity", err: errs.ErrInvalidQuantity, expectCode: http.StatusBadRequest},
			{name: "invalid category", err: errs.ErrInvalidCategory, expectCode: http.StatusBadRequest},
			{name: "store failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				s.mockCommands.EXPECT().ReserveTicket(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tt.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				s.Equal(tt.expectCode, rec.Code)
			})
		}
	})
}

func (s *TicketHandlerTestSuite) TestCancel() {
	ticketID := uuid.New()
	url := "/tickets/" + ticketID.String()

	s.Run("success: returns 200 with a confirmation", func() {
		s.mockCommands.EXPECT().CancelTicket(gomock.Any(), ticketID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.MessageResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Ticket canceled successfully", body.Message)
	})

	s.Run("unknown ticket returns 404", func() {
		s.mockCommands.EXPECT().CancelTicket(gomock.Any(), ticketID).
			Return(errs.ErrTicketNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed ID returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/tickets/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
