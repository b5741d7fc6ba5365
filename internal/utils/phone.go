package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// bdMobilePattern matches Bangladeshi mobile numbers: a local 01[3-9]
// prefix followed by eight digits, optionally preceded by the 88 country
// code with or without a plus sign.
var bdMobilePattern = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)

// ValidatePhone validates a phone number against the Bangladeshi mobile
// numbering plan and returns the cleaned number on success.
func ValidatePhone(phone string) (string, error) {
	cleaned := strings.ReplaceAll(phone, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if !bdMobilePattern.MatchString(cleaned) {
		return "", fmt.Errorf("invalid Bangladesh phone number")
	}
	return cleaned, nil
}

// NormalizePhone formats a phone number for SMS dispatch, prefixing the +88
// country code when it is not already present.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "+88") {
		return phone
	}
	if strings.HasPrefix(phone, "88") {
		return "+" + phone
	}
	return "+88" + phone
}
