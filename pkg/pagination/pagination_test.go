package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hustles", nil)
	p := FromRequest(req, 50)

	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_CustomValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hustles?limit=10&offset=30", nil)
	p := FromRequest(req, 50)

	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 30, p.Offset)
}

func TestFromRequest_InvalidLimit(t *testing.T) {
	for _, raw := range []string{"-5", "0", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/hustles?limit="+raw, nil)
		p := FromRequest(req, 20)
		assert.Equal(t, 20, p.Limit, "limit=%s should fall back to default", raw)
	}
}

func TestFromRequest_LimitClampedToMax(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hustles?limit=500", nil)
	p := FromRequest(req, 50)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestFromRequest_LimitExactlyMax(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hustles?limit=100", nil)
	p := FromRequest(req, 50)
	assert.Equal(t, 100, p.Limit)
}

func TestFromRequest_InvalidOffset(t *testing.T) {
	for _, raw := range []string{"-1", "xyz"} {
		req := httptest.NewRequest(http.MethodGet, "/hustles?offset="+raw, nil)
		p := FromRequest(req, 20)
		assert.Equal(t, 0, p.Offset, "offset=%s should fall back to 0", raw)
	}
}

func TestNewResult_Basic(t *testing.T) {
	data := []string{"a", "b", "c"}
	result := NewResult(data, 3, Params{Limit: 10, Offset: 0})

	assert.Equal(t, data, result.Data)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 0, result.Offset)
	assert.False(t, result.HasNext)
}

func TestNewResult_HasNext(t *testing.T) {
	data := []string{"a", "b"}
	result := NewResult(data, 10, Params{Limit: 2, Offset: 2})

	assert.True(t, result.HasNext)
}

func TestNewResult_LastPage(t *testing.T) {
	data := []string{"a"}
	result := NewResult(data, 11, Params{Limit: 5, Offset: 10})

	assert.False(t, result.HasNext)
}

func TestNewResult_NilDataBecomesEmptySlice(t *testing.T) {
	result := NewResult[string](nil, 0, Params{Limit: 20, Offset: 0})

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.False(t, result.HasNext)
}
