// Command hashpassword prints the bcrypt hash for AUTH_OPERATOR_PASSWORD_HASH.
//
//	go run ./cmd/hashpassword -password 's3cret'
package main

import (
	"flag"
	"fmt"
	"os"

	"eventmanager/internal/adapters/auth"
)

func main() {
	password := flag.String("password", "", "operator password to hash")
	cost := flag.Int("cost", 0, "bcrypt cost (0 uses the default)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpassword -password <password> [-cost N]")
		os.Exit(2)
	}
	hash, err := auth.NewBcryptHasher(*cost).Hash(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
