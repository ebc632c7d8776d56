package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostPlayer_nameValidation(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	const nameError = "name must only contain letters, numbers, and spaces, and be 100 characters or less"

	var errObj errorResponse
	assertPost(t, ts, "/player", playerPayload{Name: ""}, &errObj, 400)
	assert.Equal(t, nameError, errObj.Message)

	assertPost(t, ts, "/player", playerPayload{Name: " leading space"}, &errObj, 400)
	assert.Equal(t, nameError, errObj.Message)

	assertPost(t, ts, "/player", playerPayload{Name: "bad/name"}, &errObj, 400)
	assert.Equal(t, nameError, errObj.Message)

	tooLong := make([]byte, 101)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	assertPost(t, ts, "/player", playerPayload{Name: string(tooLong)}, &errObj, 400)
	assert.Equal(t, nameError, errObj.Message)
}

func Test_validPlayerNameRx(t *testing.T) {
	a := assert.New(t)
	a.True(validPlayerNameRx.MatchString("Ada"))
	a.True(validPlayerNameRx.MatchString("Jan Willem 2"))
	a.True(validPlayerNameRx.MatchString("Zoë"))
	a.False(validPlayerNameRx.MatchString(""))
	a.False(validPlayerNameRx.MatchString("tab\tname"))
	a.False(validPlayerNameRx.MatchString("newline\n"))
}