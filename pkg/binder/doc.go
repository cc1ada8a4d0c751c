// Package binder decodes HTTP request bodies into Go values.
//
// Handlers call DecodeJSON instead of wiring json.Decoder by hand, which
// keeps the content type check and the body size limit in one place.
package binder
