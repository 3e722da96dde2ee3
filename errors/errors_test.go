package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInputEmpty, "input is empty")
	assert.Equal(t, "INPUT_EMPTY: input is empty", err.Error())

	cause := stderrors.New("unexpected EOF")
	wrapped := Wrap(cause, ErrCodeParseFailed, "failed to parse JSON input")
	assert.Equal(t, "PARSE_FAILED: failed to parse JSON input (caused by: unexpected EOF)", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "wrapped")
	assert.True(t, stderrors.Is(err, cause))

	var ee *ExplorerError
	require.True(t, stderrors.As(err, &ee))
	assert.Equal(t, ErrCodeInternal, ee.Code)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeQueryInvalid, GetCode(QueryInvalid("a[", stderrors.New("syntax"))))
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config").
		WithDetail("path", "/tmp/jx.yml").
		WithDetail("line", 3)

	assert.Equal(t, "/tmp/jx.yml", err.Details["path"])
	assert.Equal(t, 3, err.Details["line"])
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, ErrCodeInputEmpty, InputEmpty().Code)
	assert.Equal(t, ErrCodeParseFailed, ParseFailed(stderrors.New("x")).Code)
	assert.Equal(t, ErrCodeClipboardUnavailable, ClipboardUnavailable(stderrors.New("no display")).Code)

	qe := QueryInvalid("users[", stderrors.New("syntax"))
	assert.Equal(t, "users[", qe.Details["expression"])

	ce := ConfigInvalid("/etc/jx.yml", stderrors.New("yaml"))
	assert.Equal(t, "/etc/jx.yml", ce.Details["path"])
}

func TestToJSON(t *testing.T) {
	err := New(ErrCodeQueryInvalid, "invalid query").WithDetail("expression", "a[")
	out := err.ToJSON()
	assert.Contains(t, out, `"code": "QUERY_INVALID"`)
	assert.Contains(t, out, `"expression": "a["`)
}
