package entity

// Category representa una categoría de productos (nombre único case-insensitive).
type Category struct {
	ID   string
	Name string
}
