package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	text, err := decodeText(EncodingUTF8SIG, []byte("\xEF\xBB\xBFabc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", text)

	text, err = decodeText(EncodingUTF8, []byte("\xEF\xBB\xBFabc"))
	require.NoError(t, err)
	assert.Equal(t, "\ufeffabc", text)

	_, err = decodeText(EncodingUTF8, []byte{0xC7, 0xD1})
	assert.Error(t, err)

	text, err = decodeText(EncodingCP949, []byte{0xC7, 0xD1})
	require.NoError(t, err)
	assert.Equal(t, "한", text)

	_, err = decodeText(EncodingCP949, []byte{0xFF})
	assert.Error(t, err)

	text, err = decodeText(EncodingLatin1, []byte{0xE9})
	require.NoError(t, err)
	assert.Equal(t, "é", text)

	_, err = decodeText("utf-16", []byte("x"))
	assert.Error(t, err)
}
