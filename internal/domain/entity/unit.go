package entity

// Unit representa una unidad de medida (nombre único case-insensitive).
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
}
