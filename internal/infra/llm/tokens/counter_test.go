package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApproximate(t *testing.T) {
	require.Equal(t, 0, approximate(""))
	require.Equal(t, 1, approximate("abc"))
	require.Equal(t, 1, approximate("abcd"))
	require.Equal(t, 2, approximate("abcde"))
	require.Equal(t, 1, approximate("°C"))
}
