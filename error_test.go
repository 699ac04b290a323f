package clipvault_test

import (
	"errors"
	"testing"

	"github.com/ewozniak/clipvault"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := clipvault.Errorf(clipvault.EINVALID, "host %q is blocked", "localhost")

	assert.Equal(t, clipvault.EINVALID, clipvault.ErrorCode(err))
	assert.Equal(t, "host \"localhost\" is blocked", clipvault.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipvault.ErrorCode(nil))
}

func TestErrorCode_UncodedError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, clipvault.EINTERNAL, clipvault.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipvault.ErrorMessage(nil))
}

func TestErrorMessage_UncodedError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", clipvault.ErrorMessage(errors.New("boom")))
}
