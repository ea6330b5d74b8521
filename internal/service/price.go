package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/tuantrung97/spe-rec-system/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer con agrupación de miles estilo en-US ("19,990"), que es como
// Shopee VN muestra los precios en esta data.
var pricePrinter = message.NewPrinter(language.English)

// FormatPrice intenta parsear el precio crudo. Si es numérico devuelve
// "19,990 VND"; si no (vacío, "N/A", texto libre) pasa el valor original
// tal cual. Nunca falla: siempre hay algo mostrable.
func FormatPrice(raw string) models.PriceDisplay {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return models.PriceDisplay{Text: raw}
	}
	return models.PriceDisplay{
		Text:      pricePrinter.Sprintf("%d VND", int64(math.Round(v))),
		Formatted: true,
	}
}
