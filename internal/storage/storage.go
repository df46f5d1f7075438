package storage

import "kiratakip/internal/models"

// Storage is the application's data access surface: keyed CRUD over the five
// entity collections plus users, and the read-time joined views built from
// them. All state is process-local and lost on restart.
type Storage interface {
	CreateTenant(p models.CreateTenantParams) models.Tenant
	GetTenant(id int) (models.Tenant, bool)
	ListTenants() []models.Tenant
	UpdateTenant(id int, p models.UpdateTenantParams) (models.Tenant, bool)
	DeleteTenant(id int) bool

	CreateLandlord(p models.CreateLandlordParams) models.Landlord
	GetLandlord(id int) (models.Landlord, bool)
	ListLandlords() []models.Landlord
	UpdateLandlord(id int, p models.UpdateLandlordParams) (models.Landlord, bool)
	DeleteLandlord(id int) bool

	CreateProperty(p models.CreatePropertyParams) models.Property
	GetProperty(id int) (models.Property, bool)
	ListProperties() []models.Property
	UpdateProperty(id int, p models.UpdatePropertyParams) (models.Property, bool)
	DeleteProperty(id int) bool

	CreateContract(p models.CreateContractParams) models.Contract
	GetContract(id int) (models.Contract, bool)
	ListContracts() []models.Contract
	UpdateContract(id int, p models.UpdateContractParams) (models.Contract, bool)
	DeleteContract(id int) bool

	CreatePayment(p models.CreatePaymentParams) models.Payment
	GetPayment(id int) (models.Payment, bool)
	ListPayments() []models.Payment
	UpdatePayment(id int, p models.UpdatePaymentParams) (models.Payment, bool)
	DeletePayment(id int) bool

	CreateUser(p models.CreateUserParams) (models.User, error)
	GetUser(id int) (models.User, bool)
	GetUserByEmail(email string) (models.User, bool)

	PropertiesWithDetails() []models.PropertyWithDetails
	ContractsWithDetails() []models.ContractWithDetails
	PaymentsWithDetails() []models.PaymentWithDetails
	PendingPayments() []models.PaymentWithDetails
	OverduePayments() []models.PaymentWithDetails
	DashboardStats() models.DashboardStats
}
