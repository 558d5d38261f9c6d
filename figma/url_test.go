package figma_test

import (
	"testing"

	"github.com/dsdoc/dsdoc"
	"github.com/dsdoc/dsdoc/figma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileURL(t *testing.T) {
	t.Parallel()

	t.Run("parses a design URL", func(t *testing.T) {
		t.Parallel()

		fileKey, nodeID, err := figma.ParseFileURL("https://www.figma.com/design/AbC123xyz/My-File?node-id=12-34&t=tracking")

		require.NoError(t, err)
		assert.Equal(t, "AbC123xyz", fileKey)
		assert.Equal(t, "12:34", nodeID)
	})

	t.Run("parses the legacy file URL shape", func(t *testing.T) {
		t.Parallel()

		fileKey, nodeID, err := figma.ParseFileURL("https://www.figma.com/file/AbC123xyz/My-File?node-id=1-2")

		require.NoError(t, err)
		assert.Equal(t, "AbC123xyz", fileKey)
		assert.Equal(t, "1:2", nodeID)
	})

	t.Run("keeps node ids already in API form", func(t *testing.T) {
		t.Parallel()

		_, nodeID, err := figma.ParseFileURL("https://www.figma.com/design/AbC123xyz/My-File?node-id=1:2")

		require.NoError(t, err)
		assert.Equal(t, "1:2", nodeID)
	})

	t.Run("rejects URLs without a node id", func(t *testing.T) {
		t.Parallel()

		_, _, err := figma.ParseFileURL("https://www.figma.com/design/AbC123xyz/My-File")

		require.Error(t, err)
		assert.Equal(t, dsdoc.EINVALID, dsdoc.ErrorCode(err))
	})

	t.Run("rejects unrecognized paths", func(t *testing.T) {
		t.Parallel()

		_, _, err := figma.ParseFileURL("https://example.com/something/else?node-id=1-2")

		require.Error(t, err)
		assert.Equal(t, dsdoc.EINVALID, dsdoc.ErrorCode(err))
	})

	t.Run("rejects unparsable input", func(t *testing.T) {
		t.Parallel()

		_, _, err := figma.ParseFileURL("ht tp://broken")

		require.Error(t, err)
		assert.Equal(t, dsdoc.EINVALID, dsdoc.ErrorCode(err))
	})
}
