package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/health-analytics-api/internal/application/dto"
	"github.com/jhoicas/health-analytics-api/internal/domain"
	"github.com/jhoicas/health-analytics-api/pkg/logger"
)

// AdvancedReportGenerator puerto del caso de uso consumido por el handler.
type AdvancedReportGenerator interface {
	Generate(ctx context.Context, companyID string, now time.Time) (*dto.AdvancedAnalyticsDTO, error)
}

// AnalyticsHandler maneja el endpoint del reporte avanzado de salud del negocio.
type AnalyticsHandler struct {
	uc  AdvancedReportGenerator
	now func() time.Time
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler. now nil usa time.Now.
func NewAnalyticsHandler(uc AdvancedReportGenerator, now func() time.Time, log *logger.Logger) *AnalyticsHandler {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &AnalyticsHandler{uc: uc, now: now, log: log.Component("analytics_handler")}
}

// GetAdvanced godoc
// @Summary      Reporte avanzado de salud del negocio
// @Description  Ingresos (tendencia 6 meses), inventario, flujo de caja, puntaje compuesto 0-100,
// @Description  recomendaciones y KPIs del tenant del token. Se calcula en cada llamada.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Debe coincidir con el company_id del token"
// @Param        as_of      query  string  false  "Fecha de corte YYYY-MM-DD (fin del día UTC). Default: ahora."
// @Success      200  {object}  dto.AdvancedAnalyticsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics/advanced [get]
func (h *AnalyticsHandler) GetAdvanced(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	if tenant := c.Query("tenant_id"); tenant != "" && tenant != companyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "tenant_id no corresponde al token",
		})
	}

	now := h.now().UTC()
	if asOf := c.Query("as_of"); asOf != "" {
		day, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_PARAMS", Message: "as_of debe tener formato YYYY-MM-DD",
			})
		}
		now = endOfDay(day)
	}

	report, err := h.uc.Generate(c.UserContext(), companyID, now)
	if err != nil {
		return h.writeError(c, companyID, err)
	}
	return c.JSON(report)
}

func (h *AnalyticsHandler) writeError(c *fiber.Ctx, companyID string, err error) error {
	var fetchErr *domain.DataFetchError
	switch {
	case errors.As(err, &fetchErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "DATA_FETCH_FAILED", Message: "no fue posible leer " + fetchErr.Source,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	default:
		h.log.Error().Err(err).Str("company_id", companyID).Msg("reporte avanzado falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno generando el reporte",
		})
	}
}

func endOfDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}
