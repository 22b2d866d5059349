package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := Parse("abcd", 40)
	assert.Error(t, err)
}

func TestParseRejectsInvalidHex(t *testing.T) {
	bad := "zz" + string(make([]byte, 38))
	_, err := Parse(bad, 40)
	assert.Error(t, err)
}

func TestParseAcceptsValidHex(t *testing.T) {
	valid := "0123456789abcdef0123456789abcdef01234567"[:40]
	addr, err := Parse(valid, 40)
	assert.NoError(t, err)
	assert.Equal(t, Address(valid), addr)
}

func TestNewAddressHexEncodes(t *testing.T) {
	addr := NewAddress([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.Equal(t, Address("deadbeef"), addr)
}

func TestRecordFoundAndNotFound(t *testing.T) {
	sentinel := NotFound("memory")
	assert.False(t, sentinel.Found())
	assert.Equal(t, "memory", sentinel.ID)

	seq := int64(1)
	present := Record{Seq: &seq}
	assert.True(t, present.Found())
	assert.True(t, present.IsMutable())
}
