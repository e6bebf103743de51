package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"DESTool/app"
	"DESTool/asnicolor"
	"DESTool/configloader"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
)

var (
	commit  string
	version = "unversioned"
	date    string

	configFlag    = false
	debuggingFlag = false
	noColorFlag   = false
	fitFlag       = false
	orderFlag     string
	encodingFlag  string

	keyFlag   string
	inputFlag string
)

// printBanner prints the banner shown before the interactive console.
func printBanner() {
	fmt.Println(asnicolor.Banner(`
=============================================================
  ____  _____ ____ _____           _
 |  _ \| ____/ ___|_   _|__   ___ | |
 | | | |  _| \___ \ | |/ _ \ / _ \| |
 | |_| | |___ ___) || | (_) | (_) | |
 |____/|_____|____/ |_|\___/ \___/|_|

=============================================================
Single-block DES: FIPS 46-3 tables, 16 Feistel rounds.
Version: ` + version + `
=============================================================`))
}

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("destool")
	flaggy.SetDescription("Encrypt and decrypt single 64-bit blocks with DES")

	flaggy.Bool(&configFlag, "c", "config", "Print the default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Log to development.log in the config dir")
	flaggy.Bool(&noColorFlag, "", "no-color", "Disable coloured output")
	flaggy.Bool(&fitFlag, "f", "fit", "Zero-pad or truncate input that is not 8 bytes")
	flaggy.String(&orderFlag, "o", "order", "Byte order: standard or reference")
	flaggy.String(&encodingFlag, "e", "encoding", "Key and plaintext encoding: text, hex or binary")
	flaggy.SetVersion(info)

	encryptCmd := newBlockCommand("encrypt", "Encrypt one 8-byte block", "Plaintext")
	decryptCmd := newBlockCommand("decrypt", "Decrypt one 8-byte block", "Ciphertext")
	roundTripCmd := newBlockCommand("roundtrip", "Encrypt a block, then decrypt the result", "Plaintext")
	traceCmd := newBlockCommand("trace", "Encrypt a block and print every round", "Plaintext")

	scheduleCmd := flaggy.NewSubcommand("schedule")
	scheduleCmd.Description = "Print the 16 round subkeys of a key"
	scheduleCmd.String(&keyFlag, "k", "key", "Key")

	selfTestCmd := flaggy.NewSubcommand("selftest")
	selfTestCmd.Description = "Run the known-answer tests"

	for _, sc := range []*flaggy.Subcommand{encryptCmd, decryptCmd, roundTripCmd, traceCmd, scheduleCmd, selfTestCmd} {
		flaggy.AttachSubcommand(sc, 1)
	}

	flaggy.Parse()

	if configFlag {
		out, err := yaml.Marshal(configloader.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", string(out))
		os.Exit(0)
	}

	appConfig, err := configloader.NewAppConfig("destool", version, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}
	applyFlags(appConfig.UserConfig)

	desApp, err := app.NewApp(appConfig, os.Stdout)
	if err == nil {
		switch {
		case encryptCmd.Used:
			err = desApp.Encrypt(keyFlag, inputFlag)
		case decryptCmd.Used:
			err = desApp.Decrypt(keyFlag, inputFlag)
		case roundTripCmd.Used:
			err = desApp.RoundTrip(keyFlag, inputFlag)
		case traceCmd.Used:
			err = desApp.Trace(keyFlag, inputFlag)
		case scheduleCmd.Used:
			err = desApp.Schedule(keyFlag)
		case selfTestCmd.Used:
			err = desApp.SelfTest()
		default:
			printBanner()
			err = desApp.RunConsole(os.Stdin)
		}
	}

	if err != nil {
		if desApp != nil {
			if errMessage, known := desApp.KnownError(err); known {
				log.Println(errMessage)
				os.Exit(1)
			}
		}

		newErr := errors.Wrap(err, 0)
		if appConfig.Debug {
			if desApp != nil {
				desApp.Log.Error(newErr.ErrorStack())
			}
			log.Fatal(newErr.ErrorStack())
		}
		log.Fatal(newErr.Error())
	}
}

func newBlockCommand(name, description, inputName string) *flaggy.Subcommand {
	sc := flaggy.NewSubcommand(name)
	sc.Description = description
	sc.String(&keyFlag, "k", "key", "Key")
	sc.String(&inputFlag, "i", "input", inputName)
	return sc
}

// applyFlags lets command line flags win over config.yml and DES_* vars.
func applyFlags(c *configloader.UserConfig) {
	if orderFlag != "" {
		c.ByteOrder = orderFlag
	}
	if encodingFlag != "" {
		c.Encoding = encodingFlag
	}
	if fitFlag {
		c.LengthPolicy = "fit"
	}
	if noColorFlag {
		c.NoColor = true
	}
}
