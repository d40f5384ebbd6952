package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

func init() {
	loginCmd.Flags().String("email", "", "account email (required)")
	loginCmd.Flags().String("password", "", "account password (required)")
	loginCmd.Flags().String("role", domain.RoleStaff, "login context: customer routes to the storefront endpoint")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().String("username", "", "unique username (required)")
	registerCmd.Flags().String("email", "", "account email (required)")
	registerCmd.Flags().String("password", "", "account password, min 8 characters (required)")
	registerCmd.Flags().String("role", domain.RoleCustomer, "account role: customer, staff, admin or manager")
	registerCmd.Flags().String("fullname", "", "display name (required)")
	registerCmd.Flags().String("phone", "", "contact phone number (required)")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("fullname")
	_ = registerCmd.MarkFlagRequired("phone")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		session, err := a.session.Login(cmd.Context(), email, password, role)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", session.User.Username, session.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the persisted session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a.session.Bootstrap(cmd.Context())
		a.session.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		session := a.session.Session()
		if expiry, ok := a.session.TokenExpiry(); ok {
			fmt.Printf("Session expires %s\n", expiry.Format(time.RFC3339))
		}
		return printJSON(session.User)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account. Customer registrations are activated and logged in
immediately; staff-type accounts are created pending activation by an
administrator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := domain.Registration{}
		reg.Username, _ = cmd.Flags().GetString("username")
		reg.Email, _ = cmd.Flags().GetString("email")
		reg.Password, _ = cmd.Flags().GetString("password")
		reg.Role, _ = cmd.Flags().GetString("role")
		reg.FullName, _ = cmd.Flags().GetString("fullname")
		reg.PhoneNumber, _ = cmd.Flags().GetString("phone")

		result, err := a.session.Register(cmd.Context(), reg)
		if err != nil {
			return err
		}
		if result.Message != "" {
			fmt.Println(result.Message)
		}
		if result.Token != "" {
			fmt.Printf("Logged in as %s\n", result.User.Username)
		}
		return nil
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
