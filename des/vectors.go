package des

import (
	"encoding/hex"

	"github.com/go-errors/errors"
)

// KnownAnswer is a validation vector in StandardOrder, hex encoded.
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownAnswers are published single-block DES vectors.
var KnownAnswers = []KnownAnswer{
	{Name: "canonical", Key: "133457799BBCDFF1", Plaintext: "0123456789ABCDEF", Ciphertext: "85E813540F0AB405"},
	{Name: "zero key", Key: "0000000000000000", Plaintext: "0000000000000000", Ciphertext: "8CA64DE9C1B123A7"},
	{Name: "ones key", Key: "FFFFFFFFFFFFFFFF", Plaintext: "FFFFFFFFFFFFFFFF", Ciphertext: "7359B2163E4EDC58"},
	{Name: "zero output", Key: "0E329232EA6D0D73", Plaintext: "8787878787878787", Ciphertext: "0000000000000000"},
	{Name: "now is t", Key: "0123456789ABCDEF", Plaintext: "4E6F772069732074", Ciphertext: "3FA40E8A984D4815"},
	{Name: "sparse key", Key: "3000000000000000", Plaintext: "1000000000000001", Ciphertext: "958E6E627A05557B"},
}

// Check encrypts and decrypts the vector and reports the first mismatch.
func (v KnownAnswer) Check() error {
	key, err := decodeHexBlock("key", v.Key)
	if err != nil {
		return err
	}
	plain, err := decodeHexBlock("plaintext", v.Plaintext)
	if err != nil {
		return err
	}
	want, err := decodeHexBlock("ciphertext", v.Ciphertext)
	if err != nil {
		return err
	}

	keys := DeriveSubkeys(key)
	if got := EncryptBlock64(plain, keys); got != want {
		return errors.Errorf("%s: encrypt gave %v, want %v", v.Name, got, want)
	}
	if got := DecryptBlock64(want, keys); got != plain {
		return errors.Errorf("%s: decrypt gave %v, want %v", v.Name, got, plain)
	}
	return nil
}

func decodeHexBlock(field, s string) (Block64, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, errors.Wrap(err, 0)
	}
	return StandardOrder.load(field, b)
}
