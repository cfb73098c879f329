// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package logging

import (
	"net/url"
	"strings"
)

// sensitiveParams lists query parameter names whose values never reach logs.
var sensitiveParams = map[string]bool{
	"api_key":       true,
	"apikey":        true,
	"key":           true,
	"token":         true,
	"access_token":  true,
	"authorization": true,
}

// SanitizeToken masks a credential, keeping the first and last four
// characters of long values.
//
//	SanitizeToken("abcd1234efgh5678") // "abcd...5678"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// IsSensitiveParam reports whether a query parameter name carries a secret.
func IsSensitiveParam(name string) bool {
	return sensitiveParams[strings.ToLower(name)]
}

// RedactURL returns rawURL with credential query parameters replaced by "***".
// Unparseable input is returned as "[invalid url]".
//
//	RedactURL("https://api.themoviedb.org/3/movie/popular?api_key=abc&page=1")
//	// "https://api.themoviedb.org/3/movie/popular?api_key=%2A%2A%2A&page=1"
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[invalid url]"
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	query := u.Query()
	changed := false
	for name := range query {
		if IsSensitiveParam(name) {
			query.Set(name, "***")
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
