package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"invalid characters stripped", `Re<po>rt:"2024"`, "Report2024"},
		{"slashes and backslashes", `a/b\c`, "abc"},
		{"spaces become underscores", "Annual Report 2024", "Annual_Report_2024"},
		{"underscore runs collapse", "a___b__c", "a_b_c"},
		{"leading and trailing trimmed", "_.name._", "name"},
		{"pipe question star", "a|b?c*d", "abcd"},
		{"interior dots survive", "v1.2.3", "v1.2.3"},
		{"empty input", "", ""},
		{"only invalid characters", `<>:"/\|?*`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Invoice_Acme_2024-03-05",
		"Report_2023-06-15_NoMetadata",
		"a_b.c",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}
