package format

import (
	"testing"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/stretchr/testify/assert"
)

func TestNew_LanguageMatching(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"fr", "fr"},
		{"fr-CA", "fr"},
		{"es-MX", "es"},
		{"not a tag", "en"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, New(tc.in).Language(), "input=%q", tc.in)
	}
}

func TestFormatter_English(t *testing.T) {
	f := New("en")

	assert.Equal(t, "$12.50", f.Currency(12.5))
	assert.Equal(t, "-$5.00", f.Currency(-5))
	assert.Equal(t, "18.3%", f.Percent(18.333))
	assert.Equal(t, "7.5h", f.Hours(7.5))
	assert.Equal(t, "8h", f.Hours(8))
	assert.Equal(t, "0h", f.Hours(0))
}

func TestFormatter_FrenchUsesDecimalComma(t *testing.T) {
	f := New("fr")

	assert.Equal(t, "12,50 $", f.Currency(12.5))
	assert.Equal(t, "7,5h", f.Hours(7.5))
}

func TestFormatter_Labels(t *testing.T) {
	assert.Equal(t, "Total Revenue", New("en").Label(LabelTotalRevenue))
	assert.Equal(t, "Revenu total", New("fr").Label(LabelTotalRevenue))
	assert.Equal(t, "Propinas", New("es").Label(LabelTips))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "4 Weeks", New("en").Label(PeriodLabel(earnings.PeriodFourWeeks)))
	assert.Equal(t, "Mois", New("fr").Label(PeriodLabel(earnings.PeriodMonth)))
	assert.Equal(t, "Hoy", New("es").Label(PeriodLabel(earnings.PeriodToday)))
	assert.Equal(t, "fortnight", PeriodLabel(earnings.Period("fortnight")))
}
