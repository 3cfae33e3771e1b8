package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrItemBorrowed       = errors.New("el ítem ya está prestado")
	ErrCheckoutNotActive  = errors.New("el préstamo ya fue devuelto")
)

// ValidationError agrupa los mensajes de validación por campo.
// Nunca se reintenta automáticamente; se muestra tal cual al usuario.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// DuplicateError colisión de clave de negocio (name, company[, batchNumber]) detectada antes de escribir.
type DuplicateError struct {
	Name        string
	Company     string
	BatchNumber string
}

func (e *DuplicateError) Error() string {
	if e.BatchNumber != "" {
		return fmt.Sprintf("ítem duplicado: %q de %q (lote %s)", e.Name, e.Company, e.BatchNumber)
	}
	return fmt.Sprintf("ítem duplicado: %q de %q", e.Name, e.Company)
}

// StoreError fallo de la capa de persistencia. Message es estable y apto para el
// cliente; la causa original queda en Err solo para logs, nunca se expone.
type StoreError struct {
	Op      string // operación que falló, ej. "fetch inventory"
	Message string // mensaje genérico para el caller
	Timeout bool   // true si la consulta excedió su deadline
	Err     error
}

func (e *StoreError) Error() string { return e.Message }
func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError construye un StoreError envolviendo la causa.
func NewStoreError(op, message string, err error) *StoreError {
	return &StoreError{Op: op, Message: message, Err: err}
}
