package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{name: "local form", phone: "01712345678", want: "01712345678"},
		{name: "country code", phone: "8801712345678", want: "8801712345678"},
		{name: "plus country code", phone: "+8801712345678", want: "+8801712345678"},
		{name: "dashes stripped", phone: "017-1234-5678", want: "01712345678"},
		{name: "spaces stripped", phone: "017 1234 5678", want: "01712345678"},
		{name: "all operator prefixes", phone: "01312345678", want: "01312345678"},
		{name: "too short", phone: "555123", wantErr: true},
		{name: "bad operator digit", phone: "01212345678", wantErr: true},
		{name: "too long", phone: "017123456789", wantErr: true},
		{name: "letters", phone: "017abc45678", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+8801712345678", NormalizePhone("01712345678"))
	assert.Equal(t, "+8801712345678", NormalizePhone("8801712345678"))
	assert.Equal(t, "+8801712345678", NormalizePhone("+8801712345678"))
}
