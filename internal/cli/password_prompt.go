package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// promptPassword asks for a password twice on the terminal with echo turned
// off and returns it once both entries match.
func promptPassword(stdin *os.File, out io.Writer) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}
	reader := bufio.NewReader(stdin)

	first, err := readHiddenLine(stdin, reader, out, "Password: ")
	if err != nil {
		return "", err
	}
	second, err := readHiddenLine(stdin, reader, out, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	return first, nil
}

func readHiddenLine(stdin *os.File, reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	restore, err := disableEcho(stdin)
	if err != nil {
		return "", fmt.Errorf("disable terminal echo: %w", err)
	}
	line, readErr := reader.ReadString('\n')
	restore()
	fmt.Fprintln(out)

	if readErr != nil && !errors.Is(readErr, io.EOF) {
		return "", readErr
	}
	return strings.TrimRight(line, "\r\n"), nil
}
