package dataset

import "errors"

// Errores de carga y consulta. Las filas malformadas NO tienen error
// propio: se saltan dentro del loader y solo se cuentan en LoadStats.
var (
	// ErrDataUnavailable la tabla requerida no se pudo obtener (fuente
	// inaccesible, archivo vacío, sin cabecera).
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrSchema a la tabla le falta una columna requerida en la cabecera.
	// No se puede distinguir "todas las filas malas" de "archivo
	// equivocado", así que se propaga al caller en vez de recuperarlo.
	ErrSchema = errors.New("schema error")

	// ErrNotFound el product_id consultado no existe en el índice de
	// similitudes. Solo aplica a productos: un usuario sin
	// recomendaciones es un resultado vacío legítimo, no un error.
	ErrNotFound = errors.New("not found")
)
