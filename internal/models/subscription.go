// Package models содержит доменные структуры, описывающие подписку,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import (
	"time"

	"github.com/go-playground/validator"
)

// RenewalDateLayout — формат даты следующего продления в запросах.
const RenewalDateLayout = "2006-01-02"

// RenewalDateValidation проверяет строку даты по формату RenewalDateLayout.
// Регистрируется в валидаторе под тегом "renewaldate": встроенной проверки
// формата даты в используемой версии валидатора нет.
func RenewalDateValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(RenewalDateLayout, fl.Field().String())
	return err == nil
}

// Subscription представляет собой основную модель подписки,
// используемую в бизнес-логике и хранилище.
// Поле Price хранится независимо от цены плана — это снимок цены
// на момент оформления, план может подорожать позже.
// Поле IsActive — единственный источник истины о том, жива ли подписка;
// NextRenewalDate носит справочный характер и ни на что не влияет.
type Subscription struct {
	ID              int       // Идентификатор подписки
	UserUID         string    // Пользователь, которому принадлежит подписка
	PlanID          int       // Тарифный план подписки
	Price           float64   // Цена подписки (снимок)
	NextRenewalDate time.Time // Дата следующего продления
	IsActive        bool      // Признак активности подписки
}

// DummySubscription используется для приёма данных подписки из JSON-запроса,
// прежде чем конвертировать их в Subscription.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummySubscription struct {
	UserUID         string  `json:"user_id" validate:"required,uuid"`
	PlanID          int     `json:"plan_id" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	NextRenewalDate string  `json:"next_renewal_date" validate:"required,renewaldate"`
}

// DummySubscriptionUpdate — полная замена подписки: в отличие от создания,
// вызывающая сторона задаёт is_active явно и может перевести подписку
// в любом направлении (в том числе реактивировать мягко удалённую).
type DummySubscriptionUpdate struct {
	UserUID         string  `json:"user_id" validate:"required,uuid"`
	PlanID          int     `json:"plan_id" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	NextRenewalDate string  `json:"next_renewal_date" validate:"required,renewaldate"`
	IsActive        *bool   `json:"is_active" validate:"required"`
}
