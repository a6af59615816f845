package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAge(t *testing.T) {
	cases := map[int]string{
		0:  "0 meses",
		1:  "1 mês",
		5:  "5 meses",
		12: "1 ano",
		13: "1 ano e 1 mês",
		26: "2 anos e 2 meses",
		36: "3 anos",
	}
	for months, want := range cases {
		assert.Equal(t, want, FormatAge(months), "months=%d", months)
	}
}

func TestNormalizeRegion(t *testing.T) {
	code, ok := NormalizeRegion(" sp ")
	assert.True(t, ok)
	assert.Equal(t, "SP", code)

	_, ok = NormalizeRegion("XX")
	assert.False(t, ok)
}
