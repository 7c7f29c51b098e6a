package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Bool works confirmation on input accepts 'y' or 'n' and returns bool.
// If input is 'y', returns true, otherwise returns false.
func Bool(m string) bool {
	return BoolFrom(os.Stdin, os.Stdout, m)
}

// BoolFrom is Bool which reads answer from r and writes prompt to w.
// Closed input is treated as 'n'.
func BoolFrom(r io.Reader, w io.Writer, m string) bool {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s [y/n]: ", m)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return false
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "y", "Y":
			return true
		case "n", "N":
			return false
		default:
			fmt.Fprintln(w, "Please type \"y\" or \"n\"")
		}
	}
}
