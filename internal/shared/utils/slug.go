package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	// Anything outside the slug alphabet becomes a hyphen.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	// Consecutive hyphens collapse into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug converts arbitrary text into a URL-safe slug.
//
//	"Hello, World!" → "hello-world"
//	"  EF Core  "   → "ef-core"
//
// The result may be empty (e.g. input of only punctuation); callers that
// need a non-empty slug should use SlugWithFallback.
func GenerateSlug(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = multiHyphen.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugWithFallback generates a slug from input, substituting a random
// 8-character token when normalization leaves nothing usable.
func SlugWithFallback(input string) string {
	if slug := GenerateSlug(input); slug != "" {
		return slug
	}
	return randomSlugToken()
}

func randomSlugToken() string {
	b := make([]byte, 4)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
