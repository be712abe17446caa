package http

import (
	"context"
	"errors"
	"net/http"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/internal/service"
	"investment-advisor/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	base.GET("/health", h.Health)

	v1 := base.Group("/v1")
	h.SetupRecommendations(v1)
	h.SetupMarket(v1)
	h.SetupSessions(v1)
	v1.GET("/options", h.GetOptions)
}

func (h *HttpAPIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", map[string]string{
		"catalog_version": h.service.CatalogRepo.Version(),
	}))
}

func (h *HttpAPIHandler) GetOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Wizard options", h.service.CatalogRepo.WizardOptions()))
}

// bindAndValidate decodes the request body into req and runs its validate
// tags. On failure it has already written the 400 response.
func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	return true, nil
}

// errorResponse maps service errors to HTTP status codes.
func (h *HttpAPIHandler) errorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrNoRecommendation):
		code = http.StatusNotFound
	default:
		h.log.ErrorContext(c.Request().Context(), "Request failed", logger.ErrorField(err))
	}
	return c.JSON(code, dto.NewErrorResponse(code, err))
}
