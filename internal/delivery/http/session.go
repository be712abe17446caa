package http

import (
	"net/http"

	"investment-advisor/internal/dto"
	"investment-advisor/internal/state"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSessions(v1 *echo.Group) {
	g := v1.Group("/sessions")
	{
		g.POST("/login", h.Login)
		g.GET("/:id", h.GetSession)
		g.DELETE("/:id", h.Logout)
		g.PUT("/:id/step", h.SetStep)
		g.POST("/:id/step/next", h.NextStep)
		g.POST("/:id/step/previous", h.PreviousStep)
		g.POST("/:id/analyze", h.AnalyzeSession)
		g.GET("/:id/historical", h.SessionHistorical)
		g.POST("/:id/reset", h.ResetSession)
	}
}

func (h *HttpAPIHandler) Login(c echo.Context) error {
	req := new(dto.LoginRequest)
	if ok, err := h.bindAndValidate(c, req); !ok {
		return err
	}

	resp, err := h.service.SessionService.Login(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Logged in", resp))
}

func (h *HttpAPIHandler) Logout(c echo.Context) error {
	if err := h.service.SessionService.Logout(c.Request().Context(), c.Param("id")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out", nil))
}

func (h *HttpAPIHandler) GetSession(c echo.Context) error {
	st, err := h.service.SessionService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Session", st))
}

func (h *HttpAPIHandler) SetStep(c echo.Context) error {
	req := new(dto.StepRequest)
	if ok, err := h.bindAndValidate(c, req); !ok {
		return err
	}

	return h.dispatch(c, "Step updated", state.SetStep{Step: req.Step})
}

func (h *HttpAPIHandler) NextStep(c echo.Context) error {
	return h.dispatch(c, "Step updated", state.NextStep{})
}

func (h *HttpAPIHandler) PreviousStep(c echo.Context) error {
	return h.dispatch(c, "Step updated", state.PreviousStep{})
}

func (h *HttpAPIHandler) dispatch(c echo.Context, message string, actions ...state.Action) error {
	st, err := h.service.SessionService.Dispatch(c.Request().Context(), c.Param("id"), actions...)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse(message, st))
}

func (h *HttpAPIHandler) AnalyzeSession(c echo.Context) error {
	profile := new(dto.InvestmentProfile)
	if ok, err := h.bindAndValidate(c, profile); !ok {
		return err
	}

	result, err := h.service.SessionService.Analyze(c.Request().Context(), c.Param("id"), *profile)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Recommendation generated", result))
}

func (h *HttpAPIHandler) SessionHistorical(c echo.Context) error {
	series, err := h.service.SessionService.Historical(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Historical series generated", series))
}

func (h *HttpAPIHandler) ResetSession(c echo.Context) error {
	return h.dispatch(c, "Session reset", state.StartOver{})
}
