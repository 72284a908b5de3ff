package fdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKey(t *testing.T) {
	assert.Equal(t, uint32(5), HashKey(5))
	assert.Equal(t, uint32(0xFFFFFFFF), HashKey(-1))
	assert.Equal(t, uint32(0x80000000), HashKey(-2147483648))
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 1, BucketIndex(HashKey(5), 4))
	assert.Equal(t, 3, BucketIndex(HashKey(-1), 4), "negative keys use their unsigned bits")
	assert.Equal(t, -1, BucketIndex(7, 0))
}

func TestSuperFastHash(t *testing.T) {
	assert.Equal(t, uint32(0), SuperFastHash(nil))

	// Every remainder branch must be deterministic and distinct for distinct input.
	inputs := []string{"a", "ab", "abc", "abcd", "abcde", "Objects"}
	seen := make(map[uint32]string)
	for _, in := range inputs {
		h := SuperFastHash([]byte(in))
		require.Equal(t, h, SuperFastHash([]byte(in)))
		_, dup := seen[h]
		assert.False(t, dup, "hash collision for %q", in)
		seen[h] = in
	}
}

func TestHashField(t *testing.T) {
	assert.Equal(t, HashKey(9), HashField(IntField(9)))
	assert.Equal(t, uint32(1), HashField(BigIntField(1<<32+1)))
	assert.Equal(t, SuperFastHash([]byte("x")), HashField(TextField(Latin1Str("x"))))
	assert.Equal(t, uint32(0), HashField(NullField()))
}

func TestLatin1Str(t *testing.T) {
	s := Latin1Str{'c', 'a', 'f', 0xE9}
	assert.Equal(t, "café", s.Decode())
	assert.True(t, s.EqualString("caf\xe9"))

	enc, err := EncodeLatin1("café")
	require.NoError(t, err)
	assert.True(t, enc.Equal(s))

	_, err = EncodeLatin1("€")
	assert.Error(t, err, "euro sign is outside ISO 8859-1")
	assert.Equal(t, Latin1Str{0x1a}, EncodeLatin1Lossy("€"))

	b, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"café"`, string(b))
}
