package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"DESTool/asnicolor"
)

const consoleHelp = "Enter a plaintext and a key to encrypt and decrypt them. Type /selftest to run the known-answer tests, /quit to leave."

// RunConsole prompts for plaintext and key pairs on in, as the reference
// program does, until EOF or /quit.
func (app *App) RunConsole(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(app.Out, asnicolor.Success(consoleHelp))

	for {
		plaintext, ok := app.prompt(scanner, "Enter the plaintext (Must be 64 bits): ")
		if !ok {
			return scanner.Err()
		}

		switch strings.ToLower(plaintext) {
		case "/quit", "/exit":
			return nil
		case "/selftest":
			if err := app.SelfTest(); err != nil {
				fmt.Fprintln(app.Out, asnicolor.Fail(err.Error()))
			}
			continue
		case "/help":
			fmt.Fprintln(app.Out, asnicolor.Success(consoleHelp))
			continue
		}

		key, ok := app.prompt(scanner, "Enter the key (Must be 64 bits): ")
		if !ok {
			return scanner.Err()
		}

		if err := app.RoundTrip(key, plaintext); err != nil {
			msg, known := app.KnownError(err)
			if !known {
				msg = "Error: " + err.Error()
			}
			fmt.Fprintln(app.Out, asnicolor.Fail(msg))
		}
	}
}

func (app *App) prompt(scanner *bufio.Scanner, text string) (string, bool) {
	fmt.Fprint(app.Out, asnicolor.Prompt(text))
	if !scanner.Scan() {
		fmt.Fprintln(app.Out)
		return "", false
	}
	return strings.TrimRight(scanner.Text(), "\r"), true
}
