package ports

import "time"

// ReportObserver puerto de salida para instrumentar la generación de reportes.
// Lo implementa el adaptador de Prometheus; en tests se usa una implementación vacía.
type ReportObserver interface {
	// ObserveReport registra un reporte generado con éxito.
	ObserveReport(duration time.Duration, riskLevel string, overallScore int)
	// ObserveFetchFailure registra un fallo de la capa de datos para la fuente indicada.
	ObserveFetchFailure(source string)
}

// NopReportObserver implementación que descarta todas las observaciones.
type NopReportObserver struct{}

func (NopReportObserver) ObserveReport(time.Duration, string, int) {}
func (NopReportObserver) ObserveFetchFailure(string)               {}
