package main

import (
	"os"
	"strconv"
	"strings"
)

// columnsEnv reads the width exported by the shell in COLUMNS, or 0.
func columnsEnv() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS")))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
