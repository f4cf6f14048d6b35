package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ReportingRepo   ReportingRepository
}
