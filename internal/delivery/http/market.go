package http

import (
	"net/http"
	"strings"

	"investment-advisor/internal/dto"
	"investment-advisor/pkg/common"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarket(v1 *echo.Group) {
	g := v1.Group("/market")
	{
		g.GET("/exchange-rate", h.GetExchangeRate)
		g.GET("/quotes/:symbol", h.GetQuote)
		g.GET("/stocks", h.GetStocks)
		g.GET("/funds", h.GetFunds)
	}
}

func (h *HttpAPIHandler) GetExchangeRate(c echo.Context) error {
	rate := h.service.MarketDataService.ExchangeRate(c.Request().Context())
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Exchange rate", dto.ExchangeRate{
		Base:   common.CURRENCY_USD,
		Target: h.cfg.FX.TargetCurrency,
		Rate:   rate,
	}))
}

func (h *HttpAPIHandler) GetQuote(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if err := h.validator.Var(symbol, "required,max=32,printascii"); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid symbol"))
	}

	quote := h.service.MarketDataService.Quote(c.Request().Context(), symbol)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Quote", quote))
}

func (h *HttpAPIHandler) GetStocks(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Indian stocks", h.service.CatalogRepo.Stocks()))
}

func (h *HttpAPIHandler) GetFunds(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Mutual funds", h.service.CatalogRepo.Funds()))
}
