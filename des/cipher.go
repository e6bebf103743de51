package des

import "crypto/cipher"

// Cipher is a DES instance for one key. It satisfies cipher.Block and is
// safe for concurrent use since nothing changes after NewCipher.
type Cipher struct {
	subkeys Subkeys
	order   ByteOrder
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher derives the key schedule for an 8-byte key in StandardOrder.
func NewCipher(key []byte) (*Cipher, error) {
	return NewCipherWithOrder(key, StandardOrder)
}

// NewCipherWithOrder is NewCipher with an explicit byte order for key and
// blocks.
func NewCipherWithOrder(key []byte, order ByteOrder) (*Cipher, error) {
	k, err := order.load("key", key)
	if err != nil {
		return nil, err
	}
	return &Cipher{subkeys: DeriveSubkeys(k), order: order}, nil
}

func (c *Cipher) BlockSize() int { return BlockSize }

// Subkeys returns a copy of the key schedule.
func (c *Cipher) Subkeys() Subkeys { return c.subkeys }

// Order returns the byte order used for key and blocks.
func (c *Cipher) Order() ByteOrder { return c.order }

// Encrypt encrypts the first block of src into dst. Like the standard
// library ciphers it panics on short buffers.
func (c *Cipher) Encrypt(dst, src []byte) { c.crypt(dst, src, Encrypt) }

// Decrypt decrypts the first block of src into dst.
func (c *Cipher) Decrypt(dst, src []byte) { c.crypt(dst, src, Decrypt) }

// EncryptBlock validates src and returns its ciphertext.
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	return c.transformBytes(src, Encrypt)
}

// DecryptBlock validates src and returns its plaintext.
func (c *Cipher) DecryptBlock(src []byte) ([]byte, error) {
	return c.transformBytes(src, Decrypt)
}

// Trace loads src and runs Trace over it.
func (c *Cipher) Trace(src []byte, dir Direction) (Block64, []RoundState, error) {
	b, err := c.order.Load(src)
	if err != nil {
		return 0, nil, err
	}
	out, states := Trace(b, c.subkeys, dir)
	return out, states, nil
}

func (c *Cipher) transformBytes(src []byte, dir Direction) ([]byte, error) {
	b, err := c.order.Load(src)
	if err != nil {
		return nil, err
	}
	return c.order.Store(Transform(b, c.subkeys, dir)), nil
}

func (c *Cipher) crypt(dst, src []byte, dir Direction) {
	if len(src) < BlockSize {
		panic("des: input not full block")
	}
	if len(dst) < BlockSize {
		panic("des: output not full block")
	}
	b, _ := c.order.Load(src[:BlockSize])
	copy(dst, c.order.Store(Transform(b, c.subkeys, dir)))
}
