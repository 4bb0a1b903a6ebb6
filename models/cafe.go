package models

// Cafe is a single catalog entry. The table keeps the name "cafe" so an
// existing cafes.db file can be served as-is.
type Cafe struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"size:250;uniqueIndex;not null" validate:"required,max=250"`
	MapURL       string  `json:"map_url" gorm:"size:500;not null" validate:"required,max=500"`
	ImgURL       string  `json:"img_url" gorm:"size:500;not null" validate:"required,max=500"`
	Location     string  `json:"location" gorm:"size:250;not null" validate:"required,max=250"`
	Seats        string  `json:"seats" gorm:"size:250;not null" validate:"required,max=250"`
	HasToilet    bool    `json:"has_toilet" gorm:"not null"`
	HasWifi      bool    `json:"has_wifi" gorm:"not null"`
	HasSockets   bool    `json:"has_sockets" gorm:"not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  *string `json:"coffee_price" gorm:"size:250" validate:"omitempty,max=250"`
}

func (Cafe) TableName() string {
	return "cafe"
}

// Columns lists the mutable column names, in table order.
var Columns = []string{
	"name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price",
}

// ToMap flattens the record into column name → value. A missing coffee
// price is emitted as nil so it encodes to JSON null.
func (c *Cafe) ToMap() map[string]any {
	var price any
	if c.CoffeePrice != nil {
		price = *c.CoffeePrice
	}
	return map[string]any{
		"id":             c.ID,
		"name":           c.Name,
		"map_url":        c.MapURL,
		"img_url":        c.ImgURL,
		"location":       c.Location,
		"seats":          c.Seats,
		"has_toilet":     c.HasToilet,
		"has_wifi":       c.HasWifi,
		"has_sockets":    c.HasSockets,
		"can_take_calls": c.CanTakeCalls,
		"coffee_price":   price,
	}
}

// ToMaps serializes a slice of records, never returning nil.
func ToMaps(cafes []Cafe) []map[string]any {
	out := make([]map[string]any, 0, len(cafes))
	for i := range cafes {
		out = append(out, cafes[i].ToMap())
	}
	return out
}
