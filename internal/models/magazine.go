package models

// Magazine представляет журнал каталога.
type Magazine struct {
	ID          int     // Идентификатор журнала
	Title       string  // Название журнала
	Description string  // Описание журнала
	BasePrice   float64 // Базовая цена журнала
}

// DummyMagazine используется для приёма данных журнала из JSON-запроса.
type DummyMagazine struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
}
