package models

import "time"

// Comentario represents a reply scoped to exactly one article. Rows are
// removed by the foreign key cascade when their article is deleted.
type Comentario struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ArticuloID uint      `gorm:"index;not null" json:"articulo_id"`
	Nombre     string    `gorm:"size:100;not null" json:"nombre"`
	Comentario string    `gorm:"type:text;not null" json:"comentario"`
	CreatedAt  time.Time `json:"createdAt"`
}
