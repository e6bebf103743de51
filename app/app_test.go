package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"DESTool/configloader"
	"DESTool/des"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, modify func(*configloader.UserConfig)) (*App, *bytes.Buffer) {
	userConfig := configloader.GetDefaultConfig()
	userConfig.NoColor = true
	if modify != nil {
		modify(&userConfig)
	}

	out := &bytes.Buffer{}
	app, err := NewApp(&configloader.AppConfig{
		Name:       "destool",
		Version:    "test",
		ConfigDir:  t.TempDir(),
		UserConfig: &userConfig,
	}, out)
	require.NoError(t, err)
	return app, out
}

func hexInput(c *configloader.UserConfig) {
	c.Encoding = "hex"
}

func TestEncryptCanonicalVector(t *testing.T) {
	app, out := newTestApp(t, hexInput)

	require.NoError(t, app.Encrypt("133457799BBCDFF1", "0123456789ABCDEF"))
	assert.Equal(t,
		"Cipher Text: 85E813540F0AB405\n"+
			"Cipher Bits: 1000010111101000000100110101010000001111000010101011010000000101\n",
		out.String())
}

func TestDecryptCanonicalVector(t *testing.T) {
	app, out := newTestApp(t, hexInput)

	require.NoError(t, app.Decrypt("133457799BBCDFF1", "85E813540F0AB405"))
	assert.Equal(t, "Plain Text: 0123456789ABCDEF\n", out.String())
}

func TestRoundTripText(t *testing.T) {
	app, out := newTestApp(t, nil)

	require.NoError(t, app.RoundTrip("sanjay..", "Tahim.B."))
	assert.Contains(t, out.String(), "Decrypted Plain Text: Tahim.B.\n")
	assert.Contains(t, out.String(), "Cipher Text: ")
}

func TestEncryptThenDecryptText(t *testing.T) {
	for _, order := range []string{"standard", "reference"} {
		app, out := newTestApp(t, func(c *configloader.UserConfig) { c.ByteOrder = order })

		require.NoError(t, app.Encrypt("sanjay..", "Tahim.B."))
		line := strings.SplitN(out.String(), "\n", 2)[0]
		cipherText := strings.TrimPrefix(line, "Cipher Text: ")
		require.Len(t, cipherText, 16, order)

		out.Reset()
		require.NoError(t, app.Decrypt("sanjay..", cipherText))
		assert.Equal(t, "Plain Text: Tahim.B.\n", out.String(), order)
	}
}

func TestByteOrdersDisagree(t *testing.T) {
	std, stdOut := newTestApp(t, nil)
	ref, refOut := newTestApp(t, func(c *configloader.UserConfig) { c.ByteOrder = "reference" })

	require.NoError(t, std.Encrypt("sanjay..", "Tahim.B."))
	require.NoError(t, ref.Encrypt("sanjay..", "Tahim.B."))
	assert.NotEqual(t, stdOut.String(), refOut.String())
}

func TestLengthPolicy(t *testing.T) {
	strict, _ := newTestApp(t, nil)
	err := strict.Encrypt("short", "Tahim.B.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, des.ErrInvalidInputLength))

	msg, known := strict.KnownError(err)
	assert.True(t, known)
	assert.Equal(t, "Error: Plaintext and key must be 64 bits each (key is 5 bytes).", msg)

	fit, out := newTestApp(t, func(c *configloader.UserConfig) { c.LengthPolicy = "fit" })
	require.NoError(t, fit.RoundTrip("short", "hi"))
	assert.Contains(t, out.String(), "Decrypted Plain Text: hi\x00\x00\x00\x00\x00\x00\n")
	assert.Contains(t, out.String(), "Warning: key is 5 bytes, fitted to 8\n")
	assert.Contains(t, out.String(), "Warning: plaintext is 2 bytes, fitted to 8\n")

	out.Reset()
	require.NoError(t, fit.Encrypt("sanjay..", "Tahim.B."))
	assert.NotContains(t, out.String(), "Warning:")
}

func TestKnownErrorIgnoresOtherErrors(t *testing.T) {
	app, _ := newTestApp(t, hexInput)
	err := app.Encrypt("not hex at all!!", "0123456789ABCDEF")
	require.Error(t, err)

	_, known := app.KnownError(err)
	assert.False(t, known)
}

func TestSchedule(t *testing.T) {
	app, out := newTestApp(t, hexInput)

	require.NoError(t, app.Schedule("133457799BBCDFF1"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, des.Rounds)
	assert.Equal(t, "K01  1B02EFFC7072  000110 110000 001011 101111 111111 000111 000001 110010", lines[0])
	assert.True(t, strings.HasPrefix(lines[15], "K16  CB3D8B0E17F5"))
}

func TestTrace(t *testing.T) {
	app, out := newTestApp(t, hexInput)

	require.NoError(t, app.Trace("133457799BBCDFF1", "0123456789ABCDEF"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, des.Rounds+1)
	assert.Equal(t, "Round 01  L=F0AAF0AA  R=EF4A6544  K=1B02EFFC7072", lines[0])
	assert.Equal(t, "Cipher Text: 85E813540F0AB405", lines[des.Rounds])
}

func TestSelfTest(t *testing.T) {
	app, out := newTestApp(t, nil)

	require.NoError(t, app.SelfTest())
	assert.Contains(t, out.String(), "PASS tables\n")
	assert.Contains(t, out.String(), "PASS canonical\n")
	assert.NotContains(t, out.String(), "FAIL")
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	userConfig := configloader.GetDefaultConfig()
	userConfig.ByteOrder = "sideways"

	_, err := NewApp(&configloader.AppConfig{ConfigDir: t.TempDir(), UserConfig: &userConfig}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunConsole(t *testing.T) {
	app, out := newTestApp(t, nil)

	in := strings.NewReader("Tahim.B.\nsanjay..\ntoo long input\nsanjay..\n/selftest\n/quit\nnever read\n")
	require.NoError(t, app.RunConsole(in))

	output := out.String()
	assert.Contains(t, output, "Enter the plaintext (Must be 64 bits): ")
	assert.Contains(t, output, "Enter the key (Must be 64 bits): ")
	assert.Contains(t, output, "Decrypted Plain Text: Tahim.B.\n")
	assert.Contains(t, output, "Error: Plaintext and key must be 64 bits each (plaintext is 14 bytes).")
	assert.Contains(t, output, "PASS canonical")
}

func TestRunConsoleStopsAtEOF(t *testing.T) {
	app, out := newTestApp(t, nil)

	require.NoError(t, app.RunConsole(strings.NewReader("Tahim.B.\n")))
	assert.NotContains(t, out.String(), "Cipher Text")
}
