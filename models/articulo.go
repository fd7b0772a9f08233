package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pardomauro/goblog/utils"
)

// TagList is the canonical ordered tag representation. Stored values may be
// a JSON array or legacy comma separated text; both scan into the same list.
// Writes always serialize to a JSON array.
type TagList []string

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal([]string(t))
	return string(b), err
}

// Scan implements sql.Scanner. It never fails: malformed stored values
// degrade to the comma-split reading.
func (t *TagList) Scan(src any) error {
	*t = utils.NormalizeTags(src)
	return nil
}

// MarshalJSON renders a nil list as [] so clients never see null tags.
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Articulo represents a blog post. Tags keep their submitted order,
// duplicates included.
type Articulo struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Titulo      string       `gorm:"size:255;not null" json:"titulo"`
	Contenido   string       `gorm:"type:text;not null" json:"contenido"`
	Autor       string       `gorm:"size:100;not null" json:"autor"`
	Categoria   string       `gorm:"size:64;not null;default:'Other'" json:"categoria"`
	Tags        TagList      `gorm:"type:json" json:"tags"`
	ImageURL    *string      `gorm:"size:500" json:"imageUrl"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Comentarios []Comentario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
