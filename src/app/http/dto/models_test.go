package dto

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindForm(t *testing.T, values url.Values, obj any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req

	return c.ShouldBind(obj)
}

func TestLoginForm_AcceptsEmptyValues(t *testing.T) {
	var form LoginForm
	err := bindForm(t, url.Values{
		"loginType": {"login"},
		"username":  {""},
		"password":  {""},
	}, &form)

	require.NoError(t, err)
	require.NotNil(t, form.Username)
	assert.Empty(t, *form.Username)
	assert.Empty(t, form.RedirectTo)
}

func TestLoginForm_MissingFields(t *testing.T) {
	var form LoginForm
	err := bindForm(t, url.Values{"loginType": {"login"}}, &form)

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"username", "password"}, MissingFields(err))
}

func TestJokeForm(t *testing.T) {
	var form JokeForm
	require.NoError(t, bindForm(t, url.Values{"name": {"Road"}, "content": {"Why did the chicken?"}}, &form))
	assert.Equal(t, "Road", *form.Name)

	var missing JokeForm
	err := bindForm(t, url.Values{"name": {"Road"}}, &missing)
	assert.Equal(t, []string{"content"}, MissingFields(err))
}

func TestJokeActionForm(t *testing.T) {
	var form JokeActionForm
	require.NoError(t, bindForm(t, url.Values{"_method": {"delete"}}, &form))
	assert.Equal(t, MethodDelete, form.Method)

	assert.Error(t, bindForm(t, url.Values{"_method": {"patch"}}, &JokeActionForm{}))
	assert.Error(t, bindForm(t, url.Values{}, &JokeActionForm{}))
}

func TestMissingFields_NonValidationError(t *testing.T) {
	assert.Nil(t, MissingFields(assert.AnError))
}
