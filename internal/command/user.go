package command

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
		userDeleteCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	var firstName, lastName string
	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Create user",
		Long: "Creates a user entry for the provided email address and password. Passwords\n" +
			"may be provided via stdin or through the interactive prompt.",

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			email := args[0]
			if passwd, err := prompt("password: ", true); err != nil {
				return err
			} else if hash, err := sec.HashPassword(passwd); err != nil {
				return err
			} else if _, err = store.CreateUser(cmd.Context(), db.User{
				FirstName:    firstName,
				LastName:     lastName,
				EmailAddress: email,
				PasswordHash: hash,
			}); err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "created user", slog.String("email", email))
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "the user's first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "the user's last name")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	return cmd
}

func userDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EMAIL",
		Short: "Delete user",
		Long: "Permanently deletes the user and every course they own. " +
			"This operation is permanent and irreversible.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			email := args[0]
			logger = logger.With(slog.String("email", email))
			user, err := store.GetUserByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			resp, err := prompt("Are you sure you want to delete this user? [y|N] ", false)
			if !bytes.Equal(resp, []byte{'y'}) || err != nil {
				logger.InfoContext(cmd.Context(), "aborted user deletion")
				return err
			}
			if err = store.DeleteUser(cmd.Context(), user.ID); err != nil {
				return err
			}
			logger.InfoContext(cmd.Context(), "user deleted")
			return nil
		},
	}
}
