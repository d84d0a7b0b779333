package models

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("renewaldate", RenewalDateValidation))
	return v
}

func TestDummySubscription_Validation(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name    string
		req     DummySubscription
		wantErr bool
	}{
		{
			name: "корректный запрос проходит валидацию",
			req: DummySubscription{
				UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
				PlanID:          1,
				Price:           10.0,
				NextRenewalDate: "2024-12-31",
			},
		},
		{
			name: "дата в неверном формате",
			req: DummySubscription{
				UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
				PlanID:          1,
				Price:           10.0,
				NextRenewalDate: "31-12-2024",
			},
			wantErr: true,
		},
		{
			name: "несуществующая календарная дата",
			req: DummySubscription{
				UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
				PlanID:          1,
				Price:           10.0,
				NextRenewalDate: "2024-02-30",
			},
			wantErr: true,
		},
		{
			name: "пустая дата",
			req: DummySubscription{
				UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
				PlanID:          1,
				Price:           10.0,
				NextRenewalDate: "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Struct не должен паниковать ни на одном входе: тег renewaldate
			// зарегистрирован явно, а не взят из встроенного набора валидатора.
			err := v.Struct(tt.req)
			if tt.wantErr {
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDummySubscriptionUpdate_Validation(t *testing.T) {
	v := newValidate(t)
	active := true

	t.Run("корректный запрос проходит валидацию", func(t *testing.T) {
		err := v.Struct(DummySubscriptionUpdate{
			UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
			PlanID:          2,
			Price:           15.5,
			NextRenewalDate: "2025-06-30",
			IsActive:        &active,
		})
		assert.NoError(t, err)
	})

	t.Run("дата в неверном формате", func(t *testing.T) {
		err := v.Struct(DummySubscriptionUpdate{
			UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
			PlanID:          2,
			Price:           15.5,
			NextRenewalDate: "30.06.2025",
			IsActive:        &active,
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
	})

	t.Run("отсутствует флаг is_active", func(t *testing.T) {
		err := v.Struct(DummySubscriptionUpdate{
			UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
			PlanID:          2,
			Price:           15.5,
			NextRenewalDate: "2025-06-30",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
	})
}
