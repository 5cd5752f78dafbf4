package services

// ServiceContainer holds instances of all the client services. This is the
// main entry point for callers wiring up the SDK.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Contact   ContactSvcFacade
	Category  CategorySvcFacade
	Label     LabelSvcFacade
	Activity  ActivitySvcFacade
	SnapClerk SnapClerkSvcFacade
	File      FileSvcFacade
	Billing   BillingSvcFacade
	Report    ReportSvcFacade
}
