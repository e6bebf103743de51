package configloader

import (
	"os"
	"path/filepath"
	"strings"

	"DESTool/des"
	"DESTool/textcodec"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/jesseduffield/yaml"
)

// AppConfig contains the settings the program runs with.
type AppConfig struct {
	Name       string
	Version    string
	Debug      bool
	ConfigDir  string
	UserConfig *UserConfig
}

// UserConfig holds the options a user can set in config.yml. Every field
// can also be overridden from the environment, see envOverrides.
type UserConfig struct {
	// ByteOrder is how 8-byte buffers map onto cipher bits: "standard"
	// (FIPS 46-3) or "reference" (the older bitset console tool).
	ByteOrder string `yaml:"byteOrder,omitempty"`

	// Encoding is how keys and plaintext are typed: "text", "hex" or
	// "binary".
	Encoding string `yaml:"encoding,omitempty"`

	// CipherEncoding is how ciphertext is printed and read back.
	CipherEncoding string `yaml:"cipherEncoding,omitempty"`

	// LengthPolicy is "reject" to refuse input that is not 8 bytes, or
	// "fit" to zero-pad or truncate it.
	LengthPolicy string `yaml:"lengthPolicy,omitempty"`

	// NoColor disables coloured console output.
	NoColor bool `yaml:"noColor,omitempty"`
}

// GetDefaultConfig returns the config used when config.yml sets nothing.
func GetDefaultConfig() UserConfig {
	return UserConfig{
		ByteOrder:      des.StandardOrder.String(),
		Encoding:       textcodec.Text.String(),
		CipherEncoding: textcodec.Hex.String(),
		LengthPolicy:   textcodec.Reject.String(),
	}
}

// NewAppConfig finds the config dir, loads config.yml over the defaults
// and applies environment overrides.
func NewAppConfig(name, version string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(userConfig, envOverrides(), mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, 0)
	}

	if err := userConfig.Validate(); err != nil {
		return nil, err
	}

	return &AppConfig{
		Name:       name,
		Version:    version,
		Debug:      debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		ConfigDir:  configDir,
		UserConfig: userConfig,
	}, nil
}

// ConfigFilename is the path of config.yml.
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}

// ByteOrderValue parses ByteOrder.
func (c *UserConfig) ByteOrderValue() des.ByteOrder {
	o, _ := des.ParseByteOrder(c.ByteOrder)
	return o
}

// EncodingValue parses Encoding.
func (c *UserConfig) EncodingValue() textcodec.Encoding {
	e, _ := textcodec.ParseEncoding(c.Encoding)
	return e
}

// CipherEncodingValue parses CipherEncoding.
func (c *UserConfig) CipherEncodingValue() textcodec.Encoding {
	e, _ := textcodec.ParseEncoding(c.CipherEncoding)
	return e
}

// LengthPolicyValue parses LengthPolicy.
func (c *UserConfig) LengthPolicyValue() textcodec.LengthPolicy {
	p, _ := textcodec.ParseLengthPolicy(c.LengthPolicy)
	return p
}

// Validate reports the first option that does not parse.
func (c *UserConfig) Validate() error {
	if _, err := des.ParseByteOrder(c.ByteOrder); err != nil {
		return errors.Errorf("byteOrder: %v", err)
	}
	if _, err := textcodec.ParseEncoding(c.Encoding); err != nil {
		return errors.Errorf("encoding: %v", err)
	}
	if _, err := textcodec.ParseEncoding(c.CipherEncoding); err != nil {
		return errors.Errorf("cipherEncoding: %v", err)
	}
	if _, err := textcodec.ParseLengthPolicy(c.LengthPolicy); err != nil {
		return errors.Errorf("lengthPolicy: %v", err)
	}
	return nil
}

// envOverrides collects the DES_* variables and NO_COLOR. Unset variables
// stay empty so mergo leaves the file value alone.
func envOverrides() UserConfig {
	return UserConfig{
		ByteOrder:      strings.TrimSpace(os.Getenv("DES_BYTE_ORDER")),
		Encoding:       strings.TrimSpace(os.Getenv("DES_ENCODING")),
		CipherEncoding: strings.TrimSpace(os.Getenv("DES_CIPHER_ENCODING")),
		LengthPolicy:   strings.TrimSpace(os.Getenv("DES_LENGTH_POLICY")),
		NoColor:        os.Getenv("NO_COLOR") != "",
	}
}

func findOrCreateConfigDir(projectName string) (string, error) {
	dir := os.Getenv("DES_CONFIG_DIR")
	if dir == "" {
		dir = xdg.New("destool", projectName).ConfigHome()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, 0)
	}
	return dir, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, 0)
		}
		file, err := os.Create(fileName)
		if err != nil {
			return nil, errors.Wrap(err, 0)
		}
		file.Close()
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, errors.Wrap(err, 0)
	}

	return base, nil
}
