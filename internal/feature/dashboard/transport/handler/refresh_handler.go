package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"te_dashboard/internal/feature/dashboard/transport/http/dto"
)

// RefreshScheduler is the scheduler surface the refresh endpoints need.
type RefreshScheduler interface {
	SetInterval(d time.Duration) error
	Interval() time.Duration
	LastRun() time.Time
	RefreshNow(ctx context.Context) error
}

// RefreshHandler exposes the auto-refresh controls: interval selection and
// the manual Refresh Now action.
type RefreshHandler struct {
	sched RefreshScheduler
}

// NewRefreshHandler creates a RefreshHandler over the given scheduler.
func NewRefreshHandler(sched RefreshScheduler) *RefreshHandler {
	return &RefreshHandler{sched: sched}
}

// RefreshNow handles POST /api/refresh: one forced market-tier refresh,
// independent of the timer state.
func (h *RefreshHandler) RefreshNow(c *gin.Context) {
	if err := h.sched.RefreshNow(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.status())
}

// Status handles GET /api/refresh.
func (h *RefreshHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

// SetInterval handles PUT /api/refresh/interval with {"seconds": n},
// n one of 0, 60, 300, 900.
func (h *RefreshHandler) SetInterval(c *gin.Context) {
	var req dto.SetIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid body", Code: "bad_request"})
		return
	}
	if err := h.sched.SetInterval(time.Duration(req.Seconds) * time.Second); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	c.JSON(http.StatusOK, h.status())
}

func (h *RefreshHandler) status() dto.RefreshStatusResponse {
	res := dto.RefreshStatusResponse{
		IntervalSeconds: int(h.sched.Interval() / time.Second),
	}
	if last := h.sched.LastRun(); !last.IsZero() {
		res.LastRefresh = last.UTC().Format(timeLayout)
	}
	return res
}
