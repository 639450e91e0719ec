// Package jsonutil provides thin wrappers over the tidwall JSON
// libraries: path-based reads via gjson, path-based writes via sjson,
// and formatting via pretty.
package jsonutil

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Valid reports whether the document is well-formed JSON.
func Valid(json string) bool {
	return gjson.Valid(json)
}

// Get returns the value at the dot-notation path.
func Get(json, path string) gjson.Result {
	return gjson.Get(json, path)
}

// Exists reports whether the path resolves to a value.
func Exists(json, path string) bool {
	return gjson.Get(json, path).Exists()
}

// GetString returns the string value at path, or fallback when the
// path is missing.
func GetString(json, path, fallback string) string {
	if v := gjson.Get(json, path); v.Exists() {
		return v.String()
	}
	return fallback
}

// GetInt returns the integer value at path, or fallback when the path
// is missing.
func GetInt(json, path string, fallback int64) int64 {
	if v := gjson.Get(json, path); v.Exists() {
		return v.Int()
	}
	return fallback
}

// GetBool returns the boolean value at path, or fallback when the path
// is missing.
func GetBool(json, path string, fallback bool) bool {
	if v := gjson.Get(json, path); v.Exists() {
		return v.Bool()
	}
	return fallback
}

// Set writes value at the dot-notation path, returning the new
// document.
func Set(json, path string, value any) (string, error) {
	out, err := sjson.Set(json, path, value)
	if err != nil {
		return "", fmt.Errorf("setting %s: %w", path, err)
	}
	return out, nil
}

// SetRaw writes a raw JSON fragment at the path.
func SetRaw(json, path, raw string) (string, error) {
	out, err := sjson.SetRaw(json, path, raw)
	if err != nil {
		return "", fmt.Errorf("setting raw %s: %w", path, err)
	}
	return out, nil
}

// Delete removes the value at the path, returning the new document.
func Delete(json, path string) (string, error) {
	out, err := sjson.Delete(json, path)
	if err != nil {
		return "", fmt.Errorf("deleting %s: %w", path, err)
	}
	return out, nil
}

// Pretty reindents the document for display.
func Pretty(json string) string {
	return string(pretty.Pretty([]byte(json)))
}

// Ugly strips all insignificant whitespace.
func Ugly(json string) string {
	return string(pretty.Ugly([]byte(json)))
}

// ForEach iterates the top-level members of an object or elements of
// an array. Iteration stops when fn returns false.
func ForEach(json string, fn func(key, value gjson.Result) bool) {
	gjson.Parse(json).ForEach(fn)
}
