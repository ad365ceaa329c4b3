package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// askConfirmation prompts for a yes/no answer on r, re-asking until the
// input is recognizable. EOF counts as a refusal.
func askConfirmation(r io.Reader, w io.Writer, prompt string) bool {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s (y/n): ", prompt)
		if !scanner.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}
