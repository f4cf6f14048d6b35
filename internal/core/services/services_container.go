package services

import (
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.TransactionRepo)

	return container
}
