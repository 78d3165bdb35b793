// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming converts schema identifiers into target-language identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '/' || r == '.'
}

// ToUpperCamelCase joins the separator-delimited parts of s, upper-casing the
// first rune of every part after the first and keeping the rest verbatim.
// When forceFirstUpper is set the first rune is upper-cased too.
// A result starting with a digit is prefixed with "_".
func ToUpperCamelCase(s string, forceFirstUpper bool) string {
	parts := strings.FieldsFunc(s, isSeparator)

	var sb strings.Builder
	for i, part := range parts {
		if i == 0 && !forceFirstUpper {
			sb.WriteString(part)
			continue
		}
		sb.WriteString(upperFirst(part))
	}

	result := sb.String()
	if r, _ := utf8.DecodeRuneInString(result); unicode.IsDigit(r) {
		result = "_" + result
	}
	return result
}

// ToPascalCase converts a snake_case or kebab-case string to PascalCase.
func ToPascalCase(s string) string {
	return ToUpperCamelCase(s, true)
}

// goAcronyms are words Go style keeps fully upper-cased.
var goAcronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"html": "HTML",
	"ip":   "IP",
	"tcp":  "TCP",
	"udp":  "UDP",
	"tls":  "TLS",
	"ssl":  "SSL",
	"ssh":  "SSH",
	"cpu":  "CPU",
	"uri":  "URI",
}

// ToGoName converts a snake_case or camelCase string to a Go exported name,
// upper-casing common acronyms (ID, URL, HTTP, ...).
func ToGoName(s string) string {
	parts := strings.FieldsFunc(s, isSeparator)

	var sb strings.Builder
	for _, part := range parts {
		if acronym, ok := goAcronyms[strings.ToLower(part)]; ok {
			sb.WriteString(acronym)
		} else {
			sb.WriteString(upperFirst(part))
		}
	}

	result := sb.String()
	if r, _ := utf8.DecodeRuneInString(result); unicode.IsDigit(r) {
		result = "_" + result
	}
	return result
}

// ToSnakeCase converts a string to a valid snake_case identifier.
// It splits on non-alphanumeric characters and camelCase boundaries,
// lowercases each part, and prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && len(cur) > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	result := strings.Join(words, "_")
	if r, _ := utf8.DecodeRuneInString(result); unicode.IsDigit(r) {
		result = "_" + result
	}
	return result
}

// ToScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
func ToScreamingSnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
