package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSettingsNormalizesMode(t *testing.T) {
	assert.Equal(t, ModeBaseline, NewSettings("nonsense", false).Mode())
	assert.Equal(t, ModeK2, NewSettings(ModeK2, false).Mode())
}

func TestSetMode(t *testing.T) {
	s := NewSettings(ModeBaseline, false)
	assert.Equal(t, ModeK2, s.SetMode(" K2 "))
	assert.Equal(t, ModeK2, s.Mode())
	assert.Equal(t, ModeBaseline, s.SetMode("something else"))
}

func TestK2EnabledOverride(t *testing.T) {
	s := NewSettings(ModeBaseline, false)
	assert.False(t, s.K2Enabled(""))
	assert.True(t, s.K2Enabled("true"))
	assert.True(t, s.K2Enabled("1"))
	assert.True(t, s.K2Enabled("k2"))

	s.SetMode(ModeK2)
	assert.True(t, s.K2Enabled(""))
	assert.False(t, s.K2Enabled("false"))
	assert.False(t, s.K2Enabled("0"))
	assert.False(t, s.K2Enabled("baseline"))

	// Garbage overrides defer to the process-wide mode.
	assert.True(t, s.K2Enabled("maybe"))
}

func TestIdentityForOverride(t *testing.T) {
	s := NewSettings(ModeBaseline, false)
	assert.False(t, s.IdentityFor(""))
	assert.True(t, s.IdentityFor("true"))
	assert.True(t, s.IdentityFor("1"))

	s.SetIdentity(true)
	assert.True(t, s.IdentityFor(""))
	assert.False(t, s.IdentityFor("false"))
}
