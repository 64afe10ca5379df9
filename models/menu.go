package models

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // smallest currency unit (whole rupiah)
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Available   bool   `json:"available"`
}

const (
	CategoryMinuman = "minuman"
	CategoryMakanan = "makanan"
	CategorySnack   = "snack"
)

// Categories is the fixed tab order of the menu screen; it is not derived
// from the data.
var Categories = []string{CategoryMinuman, CategoryMakanan, CategorySnack}
