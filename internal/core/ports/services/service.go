package services

// ServiceContainer bundles every service for injection into the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvc
}
