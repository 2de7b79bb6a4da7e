package fracture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizerErrorsAreLexical(t *testing.T) {
	f := NewFormatter()
	_, err := f.Reformat("[\"unterminated", 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLexical)
	require.NotErrorIs(t, err, ErrSyntax)

	var posErr *Error
	require.ErrorAs(t, err, &posErr)
	require.NotNil(t, posErr.Pos)
}

func TestParserErrorsAreSyntax(t *testing.T) {
	f := NewFormatter()
	_, err := f.Reformat("[1, 2,]", 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSyntax)
	require.NotErrorIs(t, err, ErrLexical)

	var posErr *Error
	require.ErrorAs(t, err, &posErr)
	require.NotNil(t, posErr.Pos)
}

func TestJSONLErrorsKeepCategory(t *testing.T) {
	f := NewFormatter()
	_, err := f.ReformatJSONL("{\"a\":1}\n[1,")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestErrorWithoutPositionPrintsBareMessage(t *testing.T) {
	err := simpleError("maximum recursion depth exceeded")
	require.Equal(t, "maximum recursion depth exceeded", err.Error())
	require.False(t, errors.Is(err, ErrLexical))
	require.False(t, errors.Is(err, ErrSyntax))
}
