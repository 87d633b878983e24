package handler

import (
	"mime/multipart"
	"testing"

	domainerrors "pawmart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFormWith(values map[string][]string) *multipart.Form {
	return &multipart.Form{Value: values}
}

func TestOptString_DistinguishesAbsentFromEmpty(t *testing.T) {
	form := multipartFormWith(map[string][]string{
		"present": {"value"},
		"cleared": {""},
	})

	present := optString(form, "present")
	require.NotNil(t, present)
	assert.Equal(t, "value", *present)

	// An explicitly empty field still counts as supplied.
	cleared := optString(form, "cleared")
	require.NotNil(t, cleared)
	assert.Empty(t, *cleared)

	assert.Nil(t, optString(form, "absent"))
}

func TestFormFloat_ParsesAndDefaults(t *testing.T) {
	form := multipartFormWith(map[string][]string{
		"price": {"19.99"},
		"junk":  {"abc"},
	})

	val, err := formFloat(form, "price")
	require.NoError(t, err)
	assert.InEpsilon(t, 19.99, val, 1e-9)

	val, err = formFloat(form, "absent")
	require.NoError(t, err)
	assert.Zero(t, val)

	_, err = formFloat(form, "junk")
	require.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestOptFloat_AbsentIsNil(t *testing.T) {
	form := multipartFormWith(map[string][]string{
		"discount": {"5"},
	})

	val, err := optFloat(form, "discount")
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.InEpsilon(t, 5.0, *val, 1e-9)

	val, err = optFloat(form, "absent")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestParseRecordID(t *testing.T) {
	id := uuid.New()

	parsed, err := parseRecordID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parseRecordID("definitely-not-a-uuid")
	require.ErrorIs(t, err, domainerrors.ErrMalformedID)
}
