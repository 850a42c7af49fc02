package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
)

const minPasswordLen = 8

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost (defaults to BCRYPT_COST)")
	flag.Parse()

	if *cost == 0 {
		*cost = config.Load().BcryptCost
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		fail("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	fmt.Fprintln(os.Stderr, "=== Hash Admin Password ===")

	fmt.Fprint(os.Stderr, "Enter Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fail("reading password: %v", err)
	}
	if len(password) < minPasswordLen {
		fail("password must be at least %d characters", minPasswordLen)
	}

	fmt.Fprint(os.Stderr, "Confirm Password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fail("reading password: %v", err)
	}
	if !bytes.Equal(password, confirm) {
		fail("passwords do not match")
	}

	hash, err := service.HashPassword(string(password), *cost)
	if err != nil {
		fail("hashing password: %v", err)
	}

	// Only the hash goes to stdout so it can be piped into an env file.
	fmt.Fprintln(os.Stderr, "Set ADMIN_PASSWORD_HASH to:")
	fmt.Println(hash)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
