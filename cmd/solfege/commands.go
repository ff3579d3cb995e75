package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/terraincognita07/solfege/internal/cli"
)

var errUsage = errors.New("usage shown")

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  solfege [serve]                                              start the HTTP server")
	fmt.Println("  solfege create-admin -email EMAIL [-first-name F] [-last-name L] create or promote a super admin")
	fmt.Println("  solfege reset-password -email EMAIL                          print a new temporary password")
}

func runCommand(args []string) error {
	database, err := resolveDatabaseConfig()
	if err != nil {
		return err
	}

	switch args[0] {
	case "create-admin":
		flags := flag.NewFlagSet("create-admin", flag.ContinueOnError)
		email := flags.String("email", "", "account email")
		firstName := flags.String("first-name", "", "first name")
		lastName := flags.String("last-name", "", "last name")
		if err := flags.Parse(args[1:]); err != nil {
			return errUsage
		}
		if *email == "" {
			flags.Usage()
			return errUsage
		}
		return cli.RunCreateAdminCommand(database, *email, *firstName, *lastName)
	case "reset-password":
		flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
		email := flags.String("email", "", "staff account email")
		if err := flags.Parse(args[1:]); err != nil {
			return errUsage
		}
		if *email == "" {
			flags.Usage()
			return errUsage
		}
		return cli.RunResetPasswordCommand(database, *email)
	default:
		printUsage()
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		return errUsage
	}
}
