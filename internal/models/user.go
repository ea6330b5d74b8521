package models

// UserRecord es la fila deduplicada de la tabla de ratings crudos.
// Solo nos interesa el mapeo user_id -> nombre visible; si el mismo
// user_id aparece con nombres distintos, gana el primero que se vio.
type UserRecord struct {
	UserID int    `json:"userId"`
	Name   string `json:"user"`
}

// UserIDBounds rango observado de user_id en el dataset (para que el
// frontend pueda acotar su input numérico, como hacía la app original).
type UserIDBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
