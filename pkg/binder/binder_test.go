package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadcraft/platform/pkg/binder"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a valid body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","password":"secret"}`))
		r.Header.Set("Content-Type", "application/json")

		var v loginBody
		require.NoError(t, binder.DecodeJSON(r, &v))
		assert.Equal(t, "a@b.co", v.Email)
		assert.Equal(t, "secret", v.Password)
	})

	t.Run("accepts a charset parameter", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var v loginBody
		require.NoError(t, binder.DecodeJSON(r, &v))
	})

	t.Run("rejects a non-JSON content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")

		var v loginBody
		assert.ErrorIs(t, binder.DecodeJSON(r, &v), binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects a missing content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))

		var v loginBody
		assert.ErrorIs(t, binder.DecodeJSON(r, &v), binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))
		r.Header.Set("Content-Type", "application/json")

		var v loginBody
		assert.ErrorIs(t, binder.DecodeJSON(r, &v), binder.ErrMalformedBody)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/json")

		var v loginBody
		assert.ErrorIs(t, binder.DecodeJSON(r, &v), binder.ErrMalformedBody)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co"}{"x":1}`))
		r.Header.Set("Content-Type", "application/json")

		var v loginBody
		assert.ErrorIs(t, binder.DecodeJSON(r, &v), binder.ErrMalformedBody)
	})

	t.Run("rejects an oversized body", func(t *testing.T) {
		t.Parallel()

		huge := `{"email":"` + strings.Repeat("a", binder.MaxBodySize) + `"}`
		r := httptest.NewRequest("POST", "/", strings.NewReader(huge))
		r.Header.Set("Content-Type", "application/json")

		var v loginBody
		assert.ErrorIs(t, binder.DecodeJSON(r, &v), binder.ErrBodyTooLarge)
	})
}
