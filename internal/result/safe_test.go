package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "login.wet", "login.wet"},
		{"path separators", "suite/login.wet", "suite_login.wet"},
		{"spaces and brackets", "login test [1].wet", "login_test__1_.wet"},
		{"accents fold to ascii", "café.wet", "cafe.wet"},
		{"underscore and dash kept", "a_b-c.wet", "a_b-c.wet"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeName(tt.in))
		})
	}
}

func TestSafeName_Stable(t *testing.T) {
	assert.Equal(t, SafeName("süite/a.wet"), SafeName("süite/a.wet"))
}
