package command

import (
	"fmt"
	"os"

	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// KeystorePasswordEnv supplies the keystore password non-interactively.
const KeystorePasswordEnv = "WALLET_KEYSTORE_PASSWORD"

var ErrPasswordMismatch = errors.New("passwords do not match")

// ReadPassword returns the password from KeystorePasswordEnv or prompts for it on the terminal.
// With confirm set, the password has to be typed twice.
func ReadPassword(prompt string, confirm bool) (string, error) {
	if pw := util.GetEnv(KeystorePasswordEnv, ""); pw != "" {
		return pw, nil
	}

	fd := int(os.Stdin.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return "", errors.Errorf("stdin is not a terminal, set %s", KeystorePasswordEnv)
	}

	pw, err := promptPassword(fd, prompt)
	if err != nil {
		return "", err
	}

	if confirm {
		again, err := promptPassword(fd, "Repeat password: ")
		if err != nil {
			return "", err
		}
		if again != pw {
			return "", ErrPasswordMismatch
		}
	}

	return pw, nil
}

//nolint:forbidigo // Password input requires direct terminal I/O
func promptPassword(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	passwordBytes, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Fprintln(os.Stderr)

	return string(passwordBytes), nil
}
