package linkscrape_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/fwojciec/linkscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := linkscrape.Errorf(linkscrape.EUNKNOWNTYPE, "unknown xlink:type value %q", "banana")

	assert.Equal(t, linkscrape.EUNKNOWNTYPE, linkscrape.ErrorCode(err))
	assert.Equal(t, "unknown xlink:type value \"banana\"", linkscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, linkscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, linkscrape.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, linkscrape.EINTERNAL, linkscrape.ErrorCode(errors.New("boom")))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	err := linkscrape.WrapError(linkscrape.EIO, io.ErrUnexpectedEOF)

	assert.Equal(t, linkscrape.EIO, linkscrape.ErrorCode(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	inner := linkscrape.Errorf(linkscrape.ENESTING, "arc element outside of an extended element")
	err := fmt.Errorf("scanning file: %w", inner)

	assert.Equal(t, linkscrape.ENESTING, linkscrape.ErrorCode(err))
	assert.Equal(t, "arc element outside of an extended element", linkscrape.ErrorMessage(err))
}
