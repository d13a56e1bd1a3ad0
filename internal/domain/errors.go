package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDataFetch    = errors.New("fallo al obtener datos del tenant")
)

// Fuentes de datos del reporte avanzado (para DataFetchError y métricas).
const (
	SourceOrders         = "orders"
	SourceInvoices       = "invoices"
	SourcePurchaseOrders = "purchase_orders"
	SourceProducts       = "products"
)

// DataFetchError indica que la capa de acceso a datos falló al leer una colección.
// Aborta el reporte completo: no existen resultados parciales.
type DataFetchError struct {
	Source string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataFetch.Error(), e.Source, e.Err)
}

// Unwrap expone el error original; errors.Is(err, ErrDataFetch) también es verdadero.
func (e *DataFetchError) Unwrap() []error {
	return []error{ErrDataFetch, e.Err}
}

// NewDataFetchError envuelve err con la fuente que lo produjo.
func NewDataFetchError(source string, err error) *DataFetchError {
	return &DataFetchError{Source: source, Err: err}
}
