package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	user := &User{Username: "alice"}

	require.NoError(t, user.SetPassword("hunter22"))
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	assert.True(t, user.CheckPassword("hunter22"))
	assert.False(t, user.CheckPassword("Hunter22"))
	assert.False(t, user.CheckPassword(""))
}
