package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/5w1tchy/bookshelf/internal/security/password"
)

func hashPasswordCommand() *cobra.Command {
	var useArgon bool

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a hash suitable for ADMIN_PASSWORD_HASH",
		Long: `Print a hash suitable for ADMIN_PASSWORD_HASH.

The password is taken from the argument, or read from stdin when omitted:
  echo -n 's3cret' | bookshelf hash-password --argon2`,
		Args: cobra.MaximumNArgs(1),
		// no config or store needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			var plain string
			if len(args) == 1 {
				plain = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("no password given")
				}
				plain = strings.TrimRight(line, "\r\n")
			}
			if plain == "" {
				return errors.New("password must not be empty")
			}

			if score, hint := password.Strength(plain, "admin"); score < 3 {
				cmd.PrintErrf("warning: weak password (%d/4): %s\n", score, hint)
			}

			var (
				hash string
				err  error
			)
			if useArgon {
				hash, err = password.HashArgon2(plain, password.DefaultParams())
			} else {
				hash, err = password.HashBcrypt(plain, password.BcryptCost)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useArgon, "argon2", false, "emit an argon2id hash instead of bcrypt")
	return cmd
}
