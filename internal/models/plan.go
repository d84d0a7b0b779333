package models

// Plan представляет тарифный план журнала.
type Plan struct {
	ID         int    // Идентификатор плана
	Name       string // Название плана
	Price      int    // Цена плана за период
	MagazineID int    // Журнал, которому принадлежит план
}

// DummyPlan используется для приёма данных плана из JSON-запроса.
type DummyPlan struct {
	Name       string `json:"name" validate:"required"`
	Price      int    `json:"price" validate:"required,gt=0"`
	MagazineID int    `json:"magazine_id" validate:"required,gt=0"`
}
