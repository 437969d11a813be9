// AngelaMos | 2026
// money_test.go

package core

import (
	"testing"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{1, "$0.01"},
		{99, "$0.99"},
		{100, "$1.00"},
		{250, "$2.50"},
		{123456, "$1234.56"},
		{-250, "-$2.50"},
		{-5, "-$0.05"},
	}

	for _, c := range cases {
		if got := FormatCents(c.cents); got != c.want {
			t.Errorf("FormatCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}
