package api

import (
	"errors"
	"net/http"

	reqdto "carreserve/internal/handler/dto/request"
	resdto "carreserve/internal/handler/dto/response"
	"carreserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carUseCase usecase.CarUseCase
}

func NewCarHandler(carUseCase usecase.CarUseCase) *CarHandler {
	return &CarHandler{
		carUseCase: carUseCase,
	}
}

// @Summary List cars
// @Description List all cars in the family fleet
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CarResponse
// @Failure 401 {object} map[string]string
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.carUseCase.ListCars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromCarViews(cars)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Register car
// @Description Add a car to the family fleet (admin only)
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car registration request"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carUseCase.CreateCar(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCarData):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car data",
			})
		case errors.Is(err, usecase.ErrDuplicatePlate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Plate number already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromCarView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Dashboard stats
// @Description Fleet size and count of reservations still in play
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardStats
// @Failure 401 {object} map[string]string
// @Router /dashboard/stats [get]
func (h *CarHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.carUseCase.GetDashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
