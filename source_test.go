package envconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSource_Lookup(t *testing.T) {
	t.Setenv("ENVCONF_TEST_SOURCE_KEY", "value")

	value, ok := EnvSource{}.Lookup("ENVCONF_TEST_SOURCE_KEY")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	_, ok = EnvSource{}.Lookup("ENVCONF_TEST_SOURCE_ABSENT")
	assert.False(t, ok)
}

func TestEnvSource_EmptyValueIsPresent(t *testing.T) {
	t.Setenv("ENVCONF_TEST_SOURCE_EMPTY", "")

	value, ok := EnvSource{}.Lookup("ENVCONF_TEST_SOURCE_EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestMapSource_Lookup(t *testing.T) {
	src := MapSource{"KEY": "value"}

	value, ok := src.Lookup("KEY")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	_, ok = src.Lookup("ABSENT")
	assert.False(t, ok)
}
