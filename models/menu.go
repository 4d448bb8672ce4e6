package models

import "time"

type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"` // centavos
	IsAvailable bool      `json:"isAvailable"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	CategoryDaily          = "daily"
	CategorySalgados       = "salgados"
	CategoryDoces          = "doces"
	CategoryMarmitasFrango = "marmitas_frango"
	CategoryMarmitasCarne  = "marmitas_carne"
	CategoryMarmitasSopa   = "marmitas_sopa"
)

// Categories lists every valid category tag. Earlier data used "sopas"
// for the soup marmitas; "marmitas_sopa" is the canonical tag.
var Categories = []string{
	CategoryDaily,
	CategorySalgados,
	CategoryDoces,
	CategoryMarmitasFrango,
	CategoryMarmitasCarne,
	CategoryMarmitasSopa,
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// FitMealCategory reports whether items of the category belong to the
// marmitas fit order flow (separate WhatsApp recipient).
func FitMealCategory(c string) bool {
	switch c {
	case CategoryMarmitasFrango, CategoryMarmitasCarne, CategoryMarmitasSopa:
		return true
	}
	return false
}
