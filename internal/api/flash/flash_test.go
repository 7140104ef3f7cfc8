package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomsen/motorlot/internal/api/flash"
)

func TestNoticeRoundTrip(t *testing.T) {
	// First response queues the notice.
	rec := httptest.NewRecorder()
	flash.Notice(rec, "Vehicle added successfully.")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "flash_notice", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// Next request carries the cookie; Pop returns and clears it.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()

	notices, errors := flash.Pop(rec, req)
	assert.Equal(t, []string{"Vehicle added successfully."}, notices)
	assert.Empty(t, errors)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestErrorAndNoticeTogether(t *testing.T) {
	rec := httptest.NewRecorder()
	flash.Notice(rec, "You're in.")
	flash.Error(rec, "But something else failed.")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	notices, errors := flash.Pop(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"You're in."}, notices)
	assert.Equal(t, []string{"But something else failed."}, errors)
}

func TestPopWithoutCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	notices, errors := flash.Pop(httptest.NewRecorder(), req)
	assert.Empty(t, notices)
	assert.Empty(t, errors)
}
