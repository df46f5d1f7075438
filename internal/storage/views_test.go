package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"kiratakip/internal/models"
)

type ViewsTestSuite struct {
	suite.Suite
	store *MemStorage
}

func (suite *ViewsTestSuite) SetupTest() {
	suite.store = NewMemStorage()
}

func TestViewsTestSuite(t *testing.T) {
	suite.Run(t, new(ViewsTestSuite))
}

func (suite *ViewsTestSuite) newTenant(email string) models.Tenant {
	return suite.store.CreateTenant(models.CreateTenantParams{
		Name:       "Kiracı " + email,
		Email:      email,
		Phone:      "+90 555 000 0000",
		NationalID: "11111111111",
	})
}

func (suite *ViewsTestSuite) newLandlord(email string) models.Landlord {
	return suite.store.CreateLandlord(models.CreateLandlordParams{
		Name:       "Ev Sahibi " + email,
		Email:      email,
		Phone:      "+90 555 000 0001",
		NationalID: "22222222222",
	})
}

func (suite *ViewsTestSuite) newProperty(landlordID int) models.Property {
	return suite.store.CreateProperty(models.CreatePropertyParams{
		LandlordID:  landlordID,
		Address:     "İstiklal Cad. No:1",
		Type:        "3+1",
		Area:        120,
		MonthlyRent: decimal.NewFromInt(5000),
	})
}

func (suite *ViewsTestSuite) newContract(tenantID, propertyID, landlordID int) models.Contract {
	return suite.store.CreateContract(models.CreateContractParams{
		TenantID:    tenantID,
		PropertyID:  propertyID,
		LandlordID:  landlordID,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(5000),
	})
}

func (suite *ViewsTestSuite) newPayment(contractID, tenantID int, status string, dueDate time.Time) models.Payment {
	return suite.store.CreatePayment(models.CreatePaymentParams{
		ContractID: contractID,
		TenantID:   tenantID,
		Amount:     decimal.NewFromInt(5000),
		DueDate:    dueDate,
		Status:     status,
	})
}

func (suite *ViewsTestSuite) TestPropertiesWithDetailsOmitsDanglingLandlord() {
	landlord := suite.newLandlord("owner@example.com")
	suite.newProperty(landlord.ID)
	orphan := suite.store.CreateProperty(models.CreatePropertyParams{
		LandlordID:  9999,
		Address:     "Hayalet Sok. No:0",
		Type:        "1+1",
		MonthlyRent: decimal.NewFromInt(3000),
	})

	details := suite.store.PropertiesWithDetails()
	require.Len(suite.T(), details, 1)
	assert.Equal(suite.T(), landlord.ID, details[0].Landlord.ID)
	for _, d := range details {
		assert.NotEqual(suite.T(), orphan.ID, d.ID)
	}
}

func (suite *ViewsTestSuite) TestPropertiesWithDetailsAttachesActiveContractData() {
	landlord := suite.newLandlord("owner@example.com")
	property := suite.newProperty(landlord.ID)

	details := suite.store.PropertiesWithDetails()
	require.Len(suite.T(), details, 1)
	assert.Nil(suite.T(), details[0].Tenant)
	assert.Nil(suite.T(), details[0].LastPayment)

	tenant := suite.newTenant("tenant@example.com")
	contract := suite.newContract(tenant.ID, property.ID, landlord.ID)
	suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPaid, time.Now().Add(-48*time.Hour))
	latest := suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPending, time.Now().Add(-24*time.Hour))

	details = suite.store.PropertiesWithDetails()
	require.Len(suite.T(), details, 1)
	require.NotNil(suite.T(), details[0].Tenant)
	assert.Equal(suite.T(), tenant.ID, details[0].Tenant.ID)
	require.NotNil(suite.T(), details[0].LastPayment)
	assert.Equal(suite.T(), latest.ID, details[0].LastPayment.ID)
}

func (suite *ViewsTestSuite) TestContractsWithDetailsOmitsDanglingReferences() {
	tenant := suite.newTenant("tenant@example.com")
	landlord := suite.newLandlord("owner@example.com")
	property := suite.newProperty(landlord.ID)
	suite.newContract(tenant.ID, property.ID, landlord.ID)

	require.Len(suite.T(), suite.store.ContractsWithDetails(), 1)

	suite.store.DeleteTenant(tenant.ID)
	assert.Empty(suite.T(), suite.store.ContractsWithDetails())
}

func (suite *ViewsTestSuite) TestPaymentsWithDetailsRequiresContractProperty() {
	tenant := suite.newTenant("tenant@example.com")
	landlord := suite.newLandlord("owner@example.com")
	property := suite.newProperty(landlord.ID)
	contract := suite.newContract(tenant.ID, property.ID, landlord.ID)
	suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPending, time.Now())

	details := suite.store.PaymentsWithDetails()
	require.Len(suite.T(), details, 1)
	assert.Equal(suite.T(), tenant.ID, details[0].Tenant.ID)
	assert.Equal(suite.T(), contract.ID, details[0].Contract.ID)
	assert.Equal(suite.T(), property.ID, details[0].Contract.Property.ID)

	suite.store.DeleteProperty(property.ID)
	assert.Empty(suite.T(), suite.store.PaymentsWithDetails())
}

func (suite *ViewsTestSuite) TestPendingAndOverduePredicates() {
	tenant := suite.newTenant("tenant@example.com")
	landlord := suite.newLandlord("owner@example.com")
	property := suite.newProperty(landlord.ID)
	contract := suite.newContract(tenant.ID, property.ID, landlord.ID)

	yesterday := time.Now().Add(-24 * time.Hour)
	tomorrow := time.Now().Add(24 * time.Hour)

	pastPending := suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPending, yesterday)
	futurePending := suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPending, tomorrow)
	suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPaid, yesterday)
	futureOverdue := suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusOverdue, tomorrow)

	pending := suite.store.PendingPayments()
	require.Len(suite.T(), pending, 3)
	pendingIDs := []int{pending[0].ID, pending[1].ID, pending[2].ID}
	assert.Contains(suite.T(), pendingIDs, pastPending.ID)
	assert.Contains(suite.T(), pendingIDs, futurePending.ID)
	assert.Contains(suite.T(), pendingIDs, futureOverdue.ID)

	overdue := suite.store.OverduePayments()
	require.Len(suite.T(), overdue, 1)
	assert.Equal(suite.T(), pastPending.ID, overdue[0].ID)
}

func (suite *ViewsTestSuite) TestDashboardStats() {
	tenant := suite.newTenant("tenant@example.com")
	suite.newTenant("tenant2@example.com")
	landlord := suite.newLandlord("owner@example.com")
	occupied := suite.newProperty(landlord.ID)
	suite.newProperty(landlord.ID) // stays available

	contract := suite.newContract(tenant.ID, occupied.ID, landlord.ID)
	// An inactive contract contributes nothing to income.
	inactive := suite.newContract(tenant.ID, occupied.ID, landlord.ID)
	suite.store.UpdateContract(inactive.ID, models.UpdateContractParams{IsActive: boolPtr(false)})
	// Deactivating the second contract marked the property available again;
	// re-assert the state driven by the first contract.
	suite.store.UpdateProperty(occupied.ID, models.UpdatePropertyParams{IsAvailable: boolPtr(false)})

	suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPending, time.Now().Add(-24*time.Hour))
	suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPaid, time.Now().Add(-24*time.Hour))

	stats := suite.store.DashboardStats()
	assert.Equal(suite.T(), 2, stats.TotalTenants)
	assert.Equal(suite.T(), 1, stats.ActiveProperties)
	assert.True(suite.T(), stats.MonthlyIncome.Equal(decimal.NewFromInt(5000)),
		"monthly income was %s", stats.MonthlyIncome)
	assert.Equal(suite.T(), 1, stats.PendingPayments)
}

func (suite *ViewsTestSuite) TestMonthlyIncomeIgnoresEndDate() {
	tenant := suite.newTenant("tenant@example.com")
	landlord := suite.newLandlord("owner@example.com")
	property := suite.newProperty(landlord.ID)

	// Expired but still flagged active; the income sum has no date bound.
	suite.store.CreateContract(models.CreateContractParams{
		TenantID:    tenant.ID,
		PropertyID:  property.ID,
		LandlordID:  landlord.ID,
		StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(7500),
	})

	stats := suite.store.DashboardStats()
	assert.True(suite.T(), stats.MonthlyIncome.Equal(decimal.NewFromInt(7500)))
}

// TestLeaseLifecycle walks the full landlord -> property -> tenant ->
// contract -> payment flow end to end.
func (suite *ViewsTestSuite) TestLeaseLifecycle() {
	landlord := suite.newLandlord("owner@example.com")
	property := suite.newProperty(landlord.ID)
	assert.True(suite.T(), property.IsAvailable)

	details := suite.store.PropertiesWithDetails()
	require.Len(suite.T(), details, 1)
	assert.Nil(suite.T(), details[0].Tenant)

	tenant := suite.newTenant("tenant@example.com")
	contract := suite.newContract(tenant.ID, property.ID, landlord.ID)

	got, _ := suite.store.GetProperty(property.ID)
	assert.False(suite.T(), got.IsAvailable)

	details = suite.store.PropertiesWithDetails()
	require.Len(suite.T(), details, 1)
	require.NotNil(suite.T(), details[0].Tenant)
	assert.Equal(suite.T(), tenant.ID, details[0].Tenant.ID)

	suite.newPayment(contract.ID, tenant.ID, models.PaymentStatusPending, time.Now().Add(-24*time.Hour))

	overdue := suite.store.OverduePayments()
	require.Len(suite.T(), overdue, 1)
	assert.Equal(suite.T(), 1, suite.store.DashboardStats().PendingPayments)
}
