package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskSessionID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "***EMPTY***", MaskSessionID(""))
	require.Equal(t, "****", MaskSessionID("abcd"))
	require.Equal(t, "********", MaskSessionID("abcd1234"))

	masked := MaskSessionID("levanter_1a2b3c4d5e")
	require.True(t, strings.HasPrefix(masked, "leva"))
	require.True(t, strings.HasSuffix(masked, "4d5e"))
	require.NotContains(t, masked, "nter_1a2b3c")
	require.Len(t, masked, len("levanter_1a2b3c4d5e"))
}
