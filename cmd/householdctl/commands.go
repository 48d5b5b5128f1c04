package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/repositories/database"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagVerbose bool

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "householdctl",
		Short:        "Household ledger maintenance",
		Long:         "Apply migrations and administer accounts using the server's environment configuration.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log database activity")

	root.AddCommand(newMigrateCmd(), newAccountsCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			store, err := database.Open(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			store.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied (%s)\n", cfg.DBDriver)
			return nil
		},
	}
}

// withAdmin opens the configured database and runs fn against the admin service.
func withAdmin(ctx context.Context, fn func(portssvc.AdminSvc) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	store, err := database.Open(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(services.NewAdminService(store.Repos.AccountRepo, store.Repos.TxManager))
}

func newAccountsCmd() *cobra.Command {
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "Administer accounts",
	}
	accounts.AddCommand(
		newAccountsListCmd(),
		newSetRoleCmd("promote", "Grant the admin role", domain.RoleAdmin),
		newSetRoleCmd("demote", "Revoke the admin role", domain.RoleUser),
		newResetPasswordCmd(),
		newDeleteAccountCmd(),
	)
	return accounts
}

func newAccountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd.Context(), func(admin portssvc.AdminSvc) error {
				list, err := admin.ListAccounts(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE\tSPOUSE")
				for _, a := range list {
					spouse := "-"
					if a.PairedAccountID != nil {
						spouse = strconv.FormatInt(*a.PairedAccountID, 10)
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", a.AccountID, a.Email, a.Name, a.Role, spouse)
				}
				return tw.Flush()
			})
		},
	}
}

func newSetRoleCmd(use, short string, role domain.Role) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <account-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			return withAdmin(cmd.Context(), func(admin portssvc.AdminSvc) error {
				if err := admin.SetRole(cmd.Context(), id, role); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Account %d is now %s\n", id, role)
				return nil
			})
		},
	}
}

func newResetPasswordCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "reset-password <account-id>",
		Short: "Set an account's password",
		Long:  "Set an account's password. Without --password the new password is read from the terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "New password: ")
				password, err = readPassword(cmd.InOrStdin())
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}
			return withAdmin(cmd.Context(), func(admin portssvc.AdminSvc) error {
				if err := admin.ResetPassword(cmd.Context(), id, password); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Password updated for account %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "New password (prompted when omitted)")
	return cmd
}

func newDeleteAccountCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account and its expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete account %d without --yes", id)
			}
			return withAdmin(cmd.Context(), func(admin portssvc.AdminSvc) error {
				if err := admin.DeleteAccount(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Account %d deleted\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}

func parseAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid account id %q", raw)
	}
	return id, nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
