package app

import (
	"fmt"
	"io"
	"strings"

	"DESTool/asnicolor"
	"DESTool/configloader"
	"DESTool/des"
	"DESTool/logger"
	"DESTool/textcodec"

	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// App runs the cipher operations behind the command line.
type App struct {
	Config *configloader.AppConfig
	Log    *logrus.Entry
	Out    io.Writer

	order          des.ByteOrder
	encoding       textcodec.Encoding
	cipherEncoding textcodec.Encoding
	lengthPolicy   textcodec.LengthPolicy
}

// NewApp bootstraps a new application writing to out.
func NewApp(config *configloader.AppConfig, out io.Writer) (*App, error) {
	if err := config.UserConfig.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(config)
	if err != nil {
		return nil, err
	}

	asnicolor.SetEnabled(!config.UserConfig.NoColor)

	return &App{
		Config:         config,
		Log:            log,
		Out:            out,
		order:          config.UserConfig.ByteOrderValue(),
		encoding:       config.UserConfig.EncodingValue(),
		cipherEncoding: config.UserConfig.CipherEncodingValue(),
		lengthPolicy:   config.UserConfig.LengthPolicyValue(),
	}, nil
}

// Encrypt encrypts one plaintext block and prints the ciphertext.
func (app *App) Encrypt(key, plaintext string) error {
	c, err := app.newCipher(key)
	if err != nil {
		return err
	}
	src, err := app.decode("plaintext", plaintext, app.encoding)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	out, err := c.EncryptBlock(src)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	app.logOp("encrypt")

	app.printField("Cipher Text", textcodec.Encode(out, app.cipherEncoding))
	app.printField("Cipher Bits", app.bits(out))
	return nil
}

// Decrypt decrypts one ciphertext block and prints the plaintext.
func (app *App) Decrypt(key, ciphertext string) error {
	c, err := app.newCipher(key)
	if err != nil {
		return err
	}
	src, err := app.decode("ciphertext", ciphertext, app.cipherEncoding)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	out, err := c.DecryptBlock(src)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	app.logOp("decrypt")

	app.printField("Plain Text", textcodec.Encode(out, app.encoding))
	return nil
}

// RoundTrip encrypts the plaintext, prints the ciphertext, decrypts it
// again and prints the recovered plaintext.
func (app *App) RoundTrip(key, plaintext string) error {
	c, err := app.newCipher(key)
	if err != nil {
		return err
	}
	src, err := app.decode("plaintext", plaintext, app.encoding)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	enc, err := c.EncryptBlock(src)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	dec, err := c.DecryptBlock(enc)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	app.logOp("roundtrip")

	app.printField("Cipher Text", textcodec.Encode(enc, app.cipherEncoding))
	app.printField("Cipher Bits", app.bits(enc))
	app.printField("Decrypted Plain Text", textcodec.Encode(dec, app.encoding))
	return nil
}

// Schedule prints the 16 round subkeys of a key.
func (app *App) Schedule(key string) error {
	c, err := app.newCipher(key)
	if err != nil {
		return err
	}
	app.logOp("schedule")

	keys := c.Subkeys()
	lines := lo.Map(keys[:], func(k des.RoundKey48, i int) string {
		return fmt.Sprintf("%s  %s  %s", asnicolor.Label(fmt.Sprintf("K%02d", i+1)), asnicolor.Value(k.String()), k.Bits())
	})
	fmt.Fprintln(app.Out, strings.Join(lines, "\n"))
	return nil
}

// Trace encrypts a block and prints the halves after every round.
func (app *App) Trace(key, plaintext string) error {
	c, err := app.newCipher(key)
	if err != nil {
		return err
	}
	src, err := app.decode("plaintext", plaintext, app.encoding)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	out, states, err := c.Trace(src, des.Encrypt)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	app.logOp("trace")

	lines := lo.Map(states, func(s des.RoundState, _ int) string {
		return fmt.Sprintf("%s  L=%s  R=%s  K=%s", asnicolor.Label(fmt.Sprintf("Round %02d", s.Round)), s.Left, s.Right, s.Key)
	})
	fmt.Fprintln(app.Out, strings.Join(lines, "\n"))
	app.printField("Cipher Text", textcodec.Encode(app.order.Store(out), app.cipherEncoding))
	return nil
}

// SelfTest checks every known-answer vector and fails if any mismatch.
func (app *App) SelfTest() error {
	if err := des.CheckTables(); err != nil {
		fmt.Fprintf(app.Out, "%s tables: %v\n", asnicolor.Fail("FAIL"), err)
		return err
	}
	fmt.Fprintf(app.Out, "%s tables\n", asnicolor.Success("PASS"))

	failed := lo.Filter(des.KnownAnswers, func(v des.KnownAnswer, _ int) bool {
		if err := v.Check(); err != nil {
			fmt.Fprintf(app.Out, "%s %s: %v\n", asnicolor.Fail("FAIL"), v.Name, err)
			return true
		}
		fmt.Fprintf(app.Out, "%s %s\n", asnicolor.Success("PASS"), v.Name)
		return false
	})
	app.Log.WithField("failed", len(failed)).Info("self test finished")

	if len(failed) > 0 {
		return errors.Errorf("%d of %d known-answer tests failed", len(failed), len(des.KnownAnswers))
	}
	return nil
}

// KnownError maps errors the user can fix to a plain message.
func (app *App) KnownError(err error) (string, bool) {
	var lengthErr *des.InputLengthError
	if errors.As(err, &lengthErr) {
		return fmt.Sprintf("Error: Plaintext and key must be 64 bits each (%s is %d bytes).", lengthErr.Field, lengthErr.Len), true
	}
	return "", false
}

func (app *App) newCipher(key string) (*des.Cipher, error) {
	k, err := app.decode("key", key, app.encoding)
	if err != nil {
		return nil, err
	}
	c, err := des.NewCipherWithOrder(k, app.order)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return c, nil
}

// decode parses s under the configured length policy. When fit mode pads
// or truncates the input, a warning names the field and its real length.
func (app *App) decode(field, s string, enc textcodec.Encoding) ([]byte, error) {
	b, err := textcodec.Decode(field, s, enc, textcodec.Reject)

	var lengthErr *des.InputLengthError
	if err != nil && app.lengthPolicy == textcodec.Fit && errors.As(err, &lengthErr) {
		fmt.Fprintf(app.Out, "%s %s is %d bytes, fitted to %d\n", asnicolor.Warn("Warning:"), field, lengthErr.Len, des.BlockSize)
		b, err = textcodec.Decode(field, s, enc, textcodec.Fit)
	}
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return b, nil
}

// bits renders a buffer as the block it loads to, bit 1 first.
func (app *App) bits(b []byte) string {
	block, err := app.order.Load(b)
	if err != nil {
		return ""
	}
	return block.Bits()
}

func (app *App) printField(label, value string) {
	fmt.Fprintf(app.Out, "%s %s\n", asnicolor.Label(label+":"), asnicolor.Value(value))
}

func (app *App) logOp(op string) {
	app.Log.WithFields(logrus.Fields{
		"op":        op,
		"byteOrder": app.order.String(),
		"encoding":  app.encoding.String(),
	}).Debug("block processed")
}
