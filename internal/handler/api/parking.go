package api

import (
	"net/http"

	reqdto "parking-monitor/internal/handler/dto/request"
	resdto "parking-monitor/internal/handler/dto/response"
	"parking-monitor/internal/handler/httperr"
	"parking-monitor/internal/handler/view"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/commands"
	"parking-monitor/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	cmds commands.ParkingCommands
	q    queries.ParkingQueries
}

func NewParkingHandler(cmds commands.ParkingCommands, q queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{cmds: cmds, q: q}
}

// @Summary Current statuses
// @Description Latest status of every parking space, HTML unless JSON is requested
// @Tags parking
// @Produce html,json
// @Success 200 {object} resdto.StatusListResponse
// @Failure 500 {object} httperr.Response
// @Router / [get]
func (h *ParkingHandler) Index(c *gin.Context) {
	views, err := h.q.CurrentStatuses(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error fetching parking statuses", nil)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, resdto.StatusListResponse{Statuses: resdto.FromParkingStatusViews(views)})
		return
	}
	c.HTML(http.StatusOK, view.IndexTemplate, gin.H{"Statuses": views})
}

// @Summary Status history
// @Description Every status event of a parking space, oldest first
// @Tags parking
// @Produce html,json
// @Param parkingId path string true "Parking space id, e.g. A1"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 500 {object} httperr.Response
// @Router /details/{parkingId} [get]
func (h *ParkingHandler) Details(c *gin.Context) {
	parkingID := c.Param("parkingId")

	views, err := h.q.History(c.Request.Context(), parkingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error fetching parking history", nil)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, resdto.HistoryResponse{ParkingID: parkingID, History: resdto.FromParkingStatusViews(views)})
		return
	}
	c.HTML(http.StatusOK, view.DetailsTemplate, gin.H{"ParkingID": parkingID, "History": views})
}

// @Summary Book parking space
// @Description Marks a known parking space as occupied by a booking
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.BookParkingRequest true "Booking request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.MessageResponse
// @Failure 500 {object} httperr.MessageResponse
// @Router /book-parking [post]
func (h *ParkingHandler) BookParking(c *gin.Context) {
	var req reqdto.BookParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidParkingSpace):
			httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid parking space.")
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid request format")
		default:
			httperr.AbortWithMessage(c, http.StatusInternalServerError, err, "Error booking parking space")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: result.Message})
}

// @Summary Release parking space
// @Description Frees a parking space held by a booking
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.ReleaseParkingRequest true "Release request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.MessageResponse
// @Failure 500 {object} httperr.MessageResponse
// @Router /release-parking [post]
func (h *ParkingHandler) ReleaseParking(c *gin.Context) {
	var req reqdto.ReleaseParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Release(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errs.Is(err, errs.ErrInvalidParkingSpace) {
			httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid parking space.")
			return
		}
		httperr.AbortWithMessage(c, http.StatusInternalServerError, err, "Error releasing parking space")
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: result.Message})
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
