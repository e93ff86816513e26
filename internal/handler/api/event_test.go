//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinema-tickets/internal/handler/api"
	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/queries"
	"cinema-tickets/tests/common/builder"
	"cinema-tickets/tests/common/httptest"
	commandsmock "cinema-tickets/tests/mock/commands"
	queriesmock "cinema-tickets/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/events", s.handler.Create)
	s.router.GET("/events", s.handler.List)
	s.router.DELETE("/events/:id", s.handler.Remove)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) TestCreate() {
	url := "/events"
	reqBody := builder.NewEventBuilder().BuildCreateRequestDTO()
	eventID := uuid.New()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockCommands.EXPECT().AddEvent(gomock.Any(), reqBody.ToParams()).
			Return(eventID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusCreated, rec.Code)
		var body resdto.CreatedResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(eventID, body.ID)
	})

	s.Run("validation: malformed body returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"title": ""})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("domain rejection returns 422", func() {
		// The usecase marks the underlying validation failure rather than
		// wrapping the sentinel, so the handler must see through the mark.
		markedErr := errs.Mark(errs.New("title must not be empty"), errs.ErrDomainValidation)
		s.mockCommands.EXPECT().AddEvent(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, markedErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("unexpected error returns 500", func() {
		s.mockCommands.EXPECT().AddEvent(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *EventHandlerTestSuite) TestList() {
	url := "/events"

	s.Run("success: returns the stored events", func() {
		view := builder.NewEventBuilder().BuildView()
		s.mockQueries.EXPECT().ListEvents(gomock.Any()).
			Return([]queries.EventView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var body []resdto.EventResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal(view.Title, body[0].Title)
	})

	s.Run("empty inventory returns an empty list", func() {
		s.mockQueries.EXPECT().ListEvents(gomock.Any()).
			Return([]queries.EventView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var body []resdto.EventResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Empty(body)
	})

	s.Run("read failure returns 500", func() {
		s.mockQueries.EXPECT().ListEvents(gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *EventHandlerTestSuite) TestRemove() {
	eventID := uuid.New()
	url := "/events/" + eventID.String()

	s.Run("success: returns 200 with a confirmation", func() {
		s.mockCommands.EXPECT().RemoveEvent(gomock.Any(), eventID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.MessageResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Event removed successfully", body.Message)
	})

	s.Run("unknown event returns 404", func() {
		s.mockCommands.EXPECT().RemoveEvent(gomock.Any(), eventID).
			Return(errs.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed ID returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/events/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
