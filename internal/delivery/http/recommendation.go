package http

import (
	"net/http"

	"investment-advisor/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupRecommendations(v1 *echo.Group) {
	g := v1.Group("/recommendations")
	{
		g.POST("", h.Analyze)
		g.POST("/historical", h.Historical)
	}
}

func (h *HttpAPIHandler) Analyze(c echo.Context) error {
	profile := new(dto.InvestmentProfile)
	if ok, err := h.bindAndValidate(c, profile); !ok {
		return err
	}

	result := h.service.RecommendationService.Analyze(c.Request().Context(), *profile)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Recommendation generated", result))
}

func (h *HttpAPIHandler) Historical(c echo.Context) error {
	req := new(dto.HistoricalRequest)
	if ok, err := h.bindAndValidate(c, req); !ok {
		return err
	}

	series := h.service.HistoricalService.GenerateSeries(req.AssetAllocation)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Historical series generated", series))
}
