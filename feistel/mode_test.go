package feistel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeCodes(t *testing.T) {
	require.Equal(t, Mode(0), ECB)
	require.Equal(t, Mode(1), CBC)
	require.Equal(t, Mode(2), PCBC)
	require.Equal(t, Mode(3), CFB)
	require.Equal(t, Mode(4), OFB)
	require.Len(t, Modes(), 5)
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"ECB":   ECB,
		"cbc":   CBC,
		" Pcbc": PCBC,
		"cfb":   CFB,
		"OFB ":  OFB,
		"0":     ECB,
		"2":     PCBC,
		"4":     OFB,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "CTR", "5", "-1", "cbc2"} {
		_, err := ParseMode(in)
		require.ErrorIs(t, err, ErrUnknownMode, in)
	}
}

func TestModeText(t *testing.T) {
	for _, m := range Modes() {
		text, err := m.MarshalText()
		require.NoError(t, err)
		require.Equal(t, m.String(), string(text))

		var back Mode
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, m, back)
	}

	_, err := Mode(7).MarshalText()
	require.ErrorIs(t, err, ErrUnknownMode)
	require.Equal(t, "Mode(7)", Mode(7).String())
	require.False(t, Mode(7).Valid())

	var m Mode
	require.Error(t, m.UnmarshalText([]byte("nope")))
}
