package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample accounts",
	Long:  `Seed the database with a manager and an employee account for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			if _, err := db.Exec("DELETE FROM reimbursements"); err != nil {
				log.Fatalf("failed to clear reimbursements: %v", err)
			}
			if _, err := db.Exec("DELETE FROM user_accounts"); err != nil {
				log.Fatalf("failed to clear user accounts: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("Chang3Me!Now"), bcrypt.DefaultCost)

		seedAccounts := []struct {
			email string
			role  string
		}{
			{"manager@example.com", "MANAGER"},
			{"employee@example.com", "EMPLOYEE"},
		}

		for _, acct := range seedAccounts {
			var exists int
			err := db.QueryRow("SELECT 1 FROM user_accounts WHERE email = $1", acct.email).Scan(&exists)
			if err == nil {
				fmt.Printf("%s already exists; skipping\n", acct.email)
				continue
			}

			_, err = db.Exec(
				"INSERT INTO user_accounts (email, password_hash, role, created_at, updated_at) VALUES ($1, $2, $3, now(), now())",
				acct.email, string(hash), acct.role)
			if err != nil {
				log.Fatalf("failed to insert %s: %v", acct.email, err)
			}
			fmt.Printf("Seeded %s account: %s\n", acct.role, acct.email)
		}
	},
}
