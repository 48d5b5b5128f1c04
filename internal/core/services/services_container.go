package services

import (
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The verifier may be nil when Google sign-in is not configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, verifier portssvc.GoogleIDTokenVerifier, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(AccountServiceParams{
		AccountRepo:    repos.AccountRepo,
		TxManager:      repos.TxManager,
		GoogleVerifier: verifier,
		AdminEmails:    cfg.AdminEmails,
	}, options...)
	container.Ledger = NewLedgerService(repos.TxManager, repos.ExpenseRepo, options...)
	container.Budget = NewBudgetService(repos.TxManager, repos.AccountRepo, options...)
	container.Admin = NewAdminService(repos.AccountRepo, repos.TxManager, options...)
	container.Token = NewTokenService(cfg)

	return container
}
