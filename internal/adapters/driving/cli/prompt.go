package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readValue reads a value for key from the command's input. On a terminal
// the value is not echoed; otherwise one line is read.
func readValue(cmd *cobra.Command, key string) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.PrintErrf("Value for %s: ", key)
		b, err := term.ReadPassword(int(f.Fd()))
		cmd.PrintErrln()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", errors.New("no value on stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// maskValue hides all but the ends of a value read from a prompt.
func maskValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 8 {
		return "****"
	}
	return string(runes[:2]) + "..." + string(runes[len(runes)-2:])
}
