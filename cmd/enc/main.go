// Command enc cifra y descifra valores para usar como ENC(...) en la config.
//
//	SECRETBOX_PASSWORD=... enc encrypt 's3cr3t'
//	enc decrypt --password ... 'ENC(...)'
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dropDatabas3/authrelay/internal/security/secretbox"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var password string

	box := func() (*secretbox.Box, error) {
		if password != "" {
			return secretbox.New(password)
		}
		b, err := secretbox.FromEnv()
		if errors.Is(err, secretbox.ErrNoPassword) {
			return nil, fmt.Errorf("usar --password o %s", secretbox.PasswordEnvVar)
		}
		return b, err
	}

	root := &cobra.Command{
		Use:          "enc",
		Short:        "Cifra/descifra valores de configuración (ENC(...))",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&password, "password", "", "master password (env "+secretbox.PasswordEnvVar+")")

	encryptCmd := &cobra.Command{
		Use:   "encrypt <valor>",
		Short: "Cifra un valor y lo imprime envuelto en ENC(...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := box()
			if err != nil {
				return err
			}
			out, err := b.Encrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secretbox.Wrap(out))
			return nil
		},
	}

	decryptCmd := &cobra.Command{
		Use:   "decrypt <valor>",
		Short: "Descifra un valor (con o sin ENC(...))",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := box()
			if err != nil {
				return err
			}
			out, err := b.Decrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	root.AddCommand(encryptCmd, decryptCmd)
	return root
}
