package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/security"
	"github.com/terraincognita07/emotrack/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

func RunResetPasswordCommand(dbPath string, email string, bcryptCost int, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	return resetPassword(database, normalizedEmail, bcryptCost, out)
}

// resetPassword replaces the stored password with a random temporary one and
// prints it once. Tokens already issued to the identity stay valid.
func resetPassword(database *gorm.DB, email string, bcryptCost int, out io.Writer) error {
	repositories := db.NewRepositories(database)
	activity := services.NewActivityService(repositories.ActivityLogs, nil)
	auth := services.NewAuthService(repositories.Users, security.NewPasswordHasher(bcryptCost), nil, activity)

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if _, err := auth.ResetPassword(email, temporaryPassword); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("user %s not found", email)
		}
		return err
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	return nil
}
