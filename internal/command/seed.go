package command

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

// seedPassword is the password for every seeded user account.
const seedPassword = "password"

func seedCommand() *cobra.Command {
	var users, courses int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with fake development data",
		Long: "Creates fake users and courses for local development. Every seeded user has\n" +
			"the password \"" + seedPassword + "\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			hash, err := sec.HashPassword(seedPassword)
			if err != nil {
				return err
			}

			faker := gofakeit.New(0)
			for range users {
				user, err := store.CreateUser(cmd.Context(), db.User{
					FirstName:    faker.FirstName(),
					LastName:     faker.LastName(),
					EmailAddress: faker.Email(),
					PasswordHash: hash,
				})
				var verr *storage.ValidationError
				if errors.As(err, &verr) {
					// generated email collided with an existing user
					continue
				} else if err != nil {
					return err
				}

				for range courses {
					estimated := fmt.Sprintf("%d hours", faker.Number(2, 40))
					if _, err := store.CreateCourse(cmd.Context(), db.Course{
						Title:         faker.Sentence(3),
						Description:   faker.Paragraph(1, 3, 12, " "),
						EstimatedTime: &estimated,
						OwnerID:       user.ID,
					}); err != nil {
						return err
					}
				}
				logger.InfoContext(cmd.Context(), "seeded user",
					slog.String("email", user.EmailAddress),
					slog.Int("courses", courses),
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&users, "users", 3, "number of users to create")
	cmd.Flags().IntVar(&courses, "courses", 4, "number of courses per user")
	return cmd
}
