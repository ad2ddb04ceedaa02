package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise-admin-service/internal/api/dto"
	apperrors "wastewise-admin-service/internal/platform/errors"
)

// chunkedRequest mimics a Transfer-Encoding: chunked body of unknown length.
func chunkedRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/routes/R1/estimate", nil)
	r.Body = io.NopCloser(strings.NewReader(body))
	r.ContentLength = -1
	return r
}

func TestDecodeOptionalJSONAcceptsEmptyBodies(t *testing.T) {
	requests := map[string]*http.Request{
		"no body":       httptest.NewRequest(http.MethodPost, "/api/v1/routes/R1/estimate", nil),
		"chunked empty": chunkedRequest(""),
		"whitespace":    chunkedRequest("  \n"),
	}
	for name, r := range requests {
		var req dto.EstimateRequest
		err := decodeOptionalJSON(httptest.NewRecorder(), r, &req)
		require.NoError(t, err, name)
		assert.False(t, req.Optimize, name)
		assert.False(t, req.Apply, name)
	}
}

func TestDecodeOptionalJSONReadsChunkedBody(t *testing.T) {
	var req dto.EstimateRequest
	err := decodeOptionalJSON(httptest.NewRecorder(), chunkedRequest(`{"optimize": true}`), &req)
	require.NoError(t, err)
	assert.True(t, req.Optimize)

	err = decodeOptionalJSON(httptest.NewRecorder(), chunkedRequest(`{"optimise": true}`), &req)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestDecodeJSONRequiresBody(t *testing.T) {
	var req dto.LoginRequest
	for _, r := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil),
		chunkedRequest(""),
	} {
		err := decodeJSON(httptest.NewRecorder(), r, &req)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		assert.Equal(t, "request body is required", apperrors.As(err).Message())
	}
}
