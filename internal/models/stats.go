package models

// TableStats conteos de carga por tabla. Las filas malformadas se
// saltan una por una y solo se cuentan aquí, nunca rompen la carga.
type TableStats struct {
	RowsKept    int `json:"rowsKept"`
	RowsSkipped int `json:"rowsSkipped"`
}

// LoadStats resumen de la última carga del dataset, expuesto en
// /admin/stats y logueado al cargar.
type LoadStats struct {
	Ratings         TableStats `json:"ratings"`
	Recommendations TableStats `json:"recommendations"`
	Similarities    TableStats `json:"similarities"`

	Users            int `json:"users"`
	UsersWithRecs    int `json:"usersWithRecs"`
	ProductsWithSims int `json:"productsWithSims"`
}
