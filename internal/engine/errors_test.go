package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError(t *testing.T) {
	err := &OperationError{Op: "remove", Date: "07062020", OrderNumber: 2, Err: fs.ErrPermission}
	assert.Equal(t, "remove order 2 on 07062020: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	err = &OperationError{Op: "lookup", Date: "07062020", Err: fs.ErrPermission}
	assert.Equal(t, "lookup on 07062020: permission denied", err.Error())
}

func TestIsOperationError(t *testing.T) {
	wrapped := fmt.Errorf("cli: %w", &OperationError{Op: "add", Err: errors.New("disk full")})
	assert.True(t, IsOperationError(wrapped))
	assert.False(t, IsOperationError(errors.New("disk full")))
	assert.False(t, IsOperationError(nil))
}
