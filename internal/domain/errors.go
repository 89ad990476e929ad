package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrDatasetUnavailable   = errors.New("no hay un dataset de inventario cargado")
	ErrMaterialNotFound     = errors.New("material no encontrado")
	ErrInvalidConfiguration = errors.New("configuración inválida")
	ErrMalformedRecord      = errors.New("registro mal formado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
)
