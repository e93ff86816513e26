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
	queriesmock "cinema-tickets/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShowtimeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockInventoryQueries
	handler     *api.ShowtimeHandler
}

func (s *ShowtimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewShowtimeHandler(s.mockQueries)

	s.router.GET("/showtimes", s.handler.List)
	s.router.GET("/showtimes/today", s.handler.ListToday)
	s.router.GET("/showtimes/:id", s.handler.Get)
}

func (s *ShowtimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShowtimeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShowtimeHandlerTestSuite))
}

func (s *ShowtimeHandlerTestSuite) TestList() {
	view := builder.NewShowtimeBuilder(uuid.New()).BuildView("Hamlet", "drama", "Shakespeare's tragedy")

	s.Run("success: filters by location", func() {
		s.mockQueries.EXPECT().ListShowtimes(gomock.Any(), "Bucuresti").
			Return([]queries.ShowtimeView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes?location=Bucuresti", nil)

		s.Equal(http.StatusOK, rec.Code)
		var body []resdto.ShowtimeResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal("Hamlet", body[0].Title)
	})

	s.Run("missing location returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ShowtimeHandlerTestSuite) TestListToday() {
	s.Run("success: delegates to the today view", func() {
		s.mockQueries.EXPECT().ListShowtimesToday(gomock.Any(), "Cluj").
			Return([]queries.ShowtimeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/today?location=Cluj", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing location returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/today", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ShowtimeHandlerTestSuite) TestGet() {
	showtimeID := uuid.New()
	url := "/showtimes/" + showtimeID.String()

	s.Run("success: returns the showtime", func() {
		view := builder.NewShowtimeBuilder(uuid.New()).BuildView("Hamlet", "drama", "")
		view.ID = showtimeID
		s.mockQueries.EXPECT().GetShowtime(gomock.Any(), showtimeID).
			Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.ShowtimeResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(showtimeID, body.ID)
	})

	s.Run("unknown showtime returns 404", func() {
		s.mockQueries.EXPECT().GetShowtime(gomock.Any(), showtimeID).
			Return(nil, errs.ErrShowtimeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed ID returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
