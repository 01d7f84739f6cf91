package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"saheminvest/internal/models"
	"saheminvest/internal/money"
)

type distributionPayload struct {
	Type       models.DistributionType `validate:"required,distribution_type"`
	Total      money.Money             `validate:"money_positive"`
	Capital    money.Money             `validate:"money_nonneg"`
	Commission *money.Money            `validate:"omitempty,money_nonneg"`
	Percent    decimal.Decimal         `validate:"percent"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterOn(v)
	return v
}

func valid() distributionPayload {
	return distributionPayload{
		Type:    models.DistributionTypePartial,
		Total:   money.MustParse("700"),
		Capital: money.Zero,
		Percent: decimal.RequireFromString("10"),
	}
}

func TestDistributionPayloadValidation(t *testing.T) {
	negative := money.MustParse("-1")

	tests := []struct {
		name    string
		mutate  func(p *distributionPayload)
		wantErr bool
	}{
		{"valid", func(p *distributionPayload) {}, false},
		{"final", func(p *distributionPayload) { p.Type = models.DistributionTypeFinal }, false},
		{"unknown_type", func(p *distributionPayload) { p.Type = "MONTHLY" }, true},
		{"zero_total", func(p *distributionPayload) { p.Total = money.Zero }, true},
		{"negative_capital", func(p *distributionPayload) { p.Capital = negative }, true},
		{"negative_commission", func(p *distributionPayload) { p.Commission = &negative }, true},
		{"nil_commission", func(p *distributionPayload) { p.Commission = nil }, false},
		{"percent_100", func(p *distributionPayload) { p.Percent = decimal.NewFromInt(100) }, false},
		{"percent_above_100", func(p *distributionPayload) { p.Percent = decimal.RequireFromString("100.5") }, true},
		{"negative_percent", func(p *distributionPayload) { p.Percent = decimal.RequireFromString("-0.1") }, true},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := v.Struct(p)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestEnumValidators(t *testing.T) {
	v := newValidator()

	for _, role := range []string{"INVESTOR", "PARTNER"} {
		if err := v.Var(role, "user_role"); err != nil {
			t.Errorf("role %s should be accepted: %v", role, err)
		}
	}
	if err := v.Var("ADMIN", "user_role"); err == nil {
		t.Error("ADMIN must not be accepted for self-registration")
	}

	if err := v.Var("FUNDED", "deal_status"); err != nil {
		t.Errorf("FUNDED should be a valid status: %v", err)
	}
	if err := v.Var("ARCHIVED", "deal_status"); err == nil {
		t.Error("ARCHIVED should be rejected")
	}
}
