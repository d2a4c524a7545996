package pagination_test

import (
	"net/http/httptest"
	"testing"

	"backend/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParseDefaults(t *testing.T) {
	p := pagination.Parse(ctxWithQuery(""))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestParseClampsOutOfRange(t *testing.T) {
	p := pagination.Parse(ctxWithQuery("page=-3&limit=9999"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.MaxLimit, p.Limit)

	p = pagination.Parse(ctxWithQuery("page=3&limit=10"))
	assert.Equal(t, 20, p.Offset)
}

func TestParseStrictRejectsInvalidBounds(t *testing.T) {
	_, err := pagination.ParseStrict(ctxWithQuery("page=0"))
	require.Error(t, err)

	_, err = pagination.ParseStrict(ctxWithQuery("limit=101"))
	require.Error(t, err)

	_, err = pagination.ParseStrict(ctxWithQuery("page=abc"))
	require.Error(t, err)

	p, err := pagination.ParseStrict(ctxWithQuery("page=2&limit=50"))
	require.NoError(t, err)
	assert.Equal(t, 50, p.Offset)
}
