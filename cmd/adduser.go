package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Pjt727/studygroup/data"
	"github.com/Pjt727/studygroup/data/db"
	"github.com/jackc/pgx/v5/pgtype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var (
	usernameFlag  string
	passwordFlag  string
	firstNameFlag string
	lastNameFlag  string
	emailFlag     string
	phoneFlag     string
)

var addUser = &cobra.Command{
	Use:   "adduser",
	Short: "add a student and their login",
	Long:  `defaults to interactive for anything not given with flags`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dbPool, err := data.NewPool(ctx, false)
		if err != nil {
			log.WithField("err", err).Error("Could not connect to the database")
			return err
		}
		defer dbPool.Close()
		store := db.NewStore(dbPool)

		in := bufio.NewReader(os.Stdin)
		firstName, err := promptRequired(in, "First name", firstNameFlag)
		if err != nil {
			return err
		}
		lastName, err := promptRequired(in, "Last name", lastNameFlag)
		if err != nil {
			return err
		}
		username, err := promptRequired(in, "Username", usernameFlag)
		if err != nil {
			return err
		}

		password := passwordFlag
		if password == "" {
			password, err = promptPassword()
			if err != nil {
				log.WithField("err", err).Error("Failed to read password")
				return err
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.WithField("err", err).Error("Could not encrypt password")
			return err
		}

		studentID, err := store.CreateStudentAccount(ctx, db.CreateStudentAccountParams{
			Student: db.InsertStudentParams{
				StudFirstName:   firstName,
				StudLastName:    lastName,
				StudPhoneNumber: pgtype.Text{String: phoneFlag, Valid: phoneFlag != ""},
				StudEmail:       pgtype.Text{String: emailFlag, Valid: emailFlag != ""},
			},
			Username:          username,
			EncryptedPassword: string(hash),
		})
		if errors.Is(err, db.ErrUsernameTaken) {
			log.WithField("username", username).Error("Username is already taken")
			return err
		}
		if err != nil {
			log.WithField("err", err).Error("Could not add student")
			return err
		}
		log.WithFields(log.Fields{
			"studentID": studentID,
			"username":  username,
		}).Info("Added student to the database")
		return nil
	},
}

func promptRequired(in *bufio.Reader, label string, value string) (string, error) {
	value = strings.TrimSpace(value)
	for value == "" {
		fmt.Printf("Enter %s: ", strings.ToLower(label))
		line, err := in.ReadString('\n')
		value = strings.TrimSpace(line)
		if err != nil && value == "" {
			log.WithField("err", err).Errorf("Failed to read %s", strings.ToLower(label))
			return "", err
		}
		if value == "" {
			fmt.Printf("%s cannot be empty. Please try again.\n", label)
		}
	}
	return value, nil
}

func promptPassword() (string, error) {
	for {
		fmt.Print("Enter password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // New line after password input
		if err != nil {
			return "", err
		}
		password := string(bytePassword)
		if password == "" {
			fmt.Println("Password cannot be empty. Please try again.")
			continue
		}

		fmt.Print("Confirm password: ")
		byteConfirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // New line after confirmation input
		if err != nil {
			return "", err
		}

		if password != string(byteConfirmPassword) {
			fmt.Println("Passwords do not match. Please try again.")
			continue
		}
		return password, nil
	}
}

func init() {
	appCmd.AddCommand(addUser)
	addUser.Flags().StringVarP(&usernameFlag, "username", "u", "", "Username for the new student")
	addUser.Flags().StringVarP(&passwordFlag, "password", "p", "", "Password for the new student")
	addUser.Flags().StringVar(&firstNameFlag, "first", "", "First name of the new student")
	addUser.Flags().StringVar(&lastNameFlag, "last", "", "Last name of the new student")
	addUser.Flags().StringVar(&emailFlag, "email", "", "Optional email")
	addUser.Flags().StringVar(&phoneFlag, "phone", "", "Optional phone number")
}
