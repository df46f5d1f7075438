package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"kiratakip/internal/models"
)

// ErrEmailTaken is returned by CreateUser when the email already has an account.
var ErrEmailTaken = errors.New("email already registered")

// MemStorage keeps every collection in a process-local map behind one mutex.
// Ids come from a single counter shared across all entity kinds, so an id is
// unique globally, not just within its collection. There is no referential
// integrity: deleting a parent leaves child foreign keys dangling and the
// joined views silently drop the affected rows.
type MemStorage struct {
	mu     sync.RWMutex
	nextID int

	tenants    map[int]models.Tenant
	landlords  map[int]models.Landlord
	properties map[int]models.Property
	contracts  map[int]models.Contract
	payments   map[int]models.Payment
	users      map[int]models.User
}

// NewMemStorage creates an empty store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		nextID:     1,
		tenants:    make(map[int]models.Tenant),
		landlords:  make(map[int]models.Landlord),
		properties: make(map[int]models.Property),
		contracts:  make(map[int]models.Contract),
		payments:   make(map[int]models.Payment),
		users:      make(map[int]models.User),
	}
}

// allocID must be called with the write lock held.
func (s *MemStorage) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Tenants

func (s *MemStorage) CreateTenant(p models.CreateTenantParams) models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := models.Tenant{
		ID:               s.allocID(),
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		NationalID:       p.NationalID,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		CreatedAt:        time.Now(),
	}
	s.tenants[t.ID] = t
	return t
}

func (s *MemStorage) GetTenant(id int) (models.Tenant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[id]
	return t, ok
}

func (s *MemStorage) ListTenants() []models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tenant, 0, len(s.tenants))
	for _, id := range sortedIDs(s.tenants) {
		out = append(out, s.tenants[id])
	}
	return out
}

func (s *MemStorage) UpdateTenant(id int, p models.UpdateTenantParams) (models.Tenant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[id]
	if !ok {
		return models.Tenant{}, false
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
	}
	if p.NationalID != nil {
		t.NationalID = *p.NationalID
	}
	if p.Address != nil {
		t.Address = p.Address
	}
	if p.EmergencyContact != nil {
		t.EmergencyContact = p.EmergencyContact
	}
	if p.EmergencyPhone != nil {
		t.EmergencyPhone = p.EmergencyPhone
	}
	s.tenants[id] = t
	return t, true
}

func (s *MemStorage) DeleteTenant(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[id]; !ok {
		return false
	}
	delete(s.tenants, id)
	return true
}

// Landlords

func (s *MemStorage) CreateLandlord(p models.CreateLandlordParams) models.Landlord {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := models.Landlord{
		ID:          s.allocID(),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		NationalID:  p.NationalID,
		Address:     p.Address,
		BankAccount: p.BankAccount,
		TaxNumber:   p.TaxNumber,
		CreatedAt:   time.Now(),
	}
	s.landlords[l.ID] = l
	return l
}

func (s *MemStorage) GetLandlord(id int) (models.Landlord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.landlords[id]
	return l, ok
}

func (s *MemStorage) ListLandlords() []models.Landlord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Landlord, 0, len(s.landlords))
	for _, id := range sortedIDs(s.landlords) {
		out = append(out, s.landlords[id])
	}
	return out
}

func (s *MemStorage) UpdateLandlord(id int, p models.UpdateLandlordParams) (models.Landlord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.landlords[id]
	if !ok {
		return models.Landlord{}, false
	}
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.NationalID != nil {
		l.NationalID = *p.NationalID
	}
	if p.Address != nil {
		l.Address = p.Address
	}
	if p.BankAccount != nil {
		l.BankAccount = p.BankAccount
	}
	if p.TaxNumber != nil {
		l.TaxNumber = p.TaxNumber
	}
	s.landlords[id] = l
	return l, true
}

func (s *MemStorage) DeleteLandlord(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.landlords[id]; !ok {
		return false
	}
	delete(s.landlords, id)
	return true
}

// Properties

func (s *MemStorage) CreateProperty(p models.CreatePropertyParams) models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	available := true
	if p.IsAvailable != nil {
		available = *p.IsAvailable
	}
	prop := models.Property{
		ID:          s.allocID(),
		LandlordID:  p.LandlordID,
		Address:     p.Address,
		Type:        p.Type,
		Area:        p.Area,
		Floor:       p.Floor,
		HasBalcony:  p.HasBalcony,
		HasParking:  p.HasParking,
		IsAvailable: available,
		MonthlyRent: p.MonthlyRent,
		Deposit:     p.Deposit,
		Description: p.Description,
		CreatedAt:   time.Now(),
	}
	s.properties[prop.ID] = prop
	return prop
}

func (s *MemStorage) GetProperty(id int) (models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	return p, ok
}

func (s *MemStorage) ListProperties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, 0, len(s.properties))
	for _, id := range sortedIDs(s.properties) {
		out = append(out, s.properties[id])
	}
	return out
}

func (s *MemStorage) UpdateProperty(id int, p models.UpdatePropertyParams) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prop, ok := s.properties[id]
	if !ok {
		return models.Property{}, false
	}
	if p.LandlordID != nil {
		prop.LandlordID = *p.LandlordID
	}
	if p.Address != nil {
		prop.Address = *p.Address
	}
	if p.Type != nil {
		prop.Type = *p.Type
	}
	if p.Area != nil {
		prop.Area = *p.Area
	}
	if p.Floor != nil {
		prop.Floor = p.Floor
	}
	if p.HasBalcony != nil {
		prop.HasBalcony = *p.HasBalcony
	}
	if p.HasParking != nil {
		prop.HasParking = *p.HasParking
	}
	if p.IsAvailable != nil {
		prop.IsAvailable = *p.IsAvailable
	}
	if p.MonthlyRent != nil {
		prop.MonthlyRent = *p.MonthlyRent
	}
	if p.Deposit != nil {
		prop.Deposit = *p.Deposit
	}
	if p.Description != nil {
		prop.Description = p.Description
	}
	s.properties[id] = prop
	return prop, true
}

func (s *MemStorage) DeleteProperty(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return false
	}
	delete(s.properties, id)
	return true
}

// Contracts
//
// Contract mutations maintain the cached Property.IsAvailable flag: an active
// contract marks the property unavailable, deactivation or deletion marks it
// available again. Deletion does not check for other active contracts on the
// same property.

func (s *MemStorage) CreateContract(p models.CreateContractParams) models.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	c := models.Contract{
		ID:          s.allocID(),
		TenantID:    p.TenantID,
		PropertyID:  p.PropertyID,
		LandlordID:  p.LandlordID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		MonthlyRent: p.MonthlyRent,
		Deposit:     p.Deposit,
		IsActive:    active,
		Terms:       p.Terms,
		CreatedAt:   time.Now(),
	}
	s.contracts[c.ID] = c
	if c.IsActive {
		s.setPropertyAvailability(c.PropertyID, false)
	}
	return c
}

func (s *MemStorage) GetContract(id int) (models.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contracts[id]
	return c, ok
}

func (s *MemStorage) ListContracts() []models.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Contract, 0, len(s.contracts))
	for _, id := range sortedIDs(s.contracts) {
		out = append(out, s.contracts[id])
	}
	return out
}

func (s *MemStorage) UpdateContract(id int, p models.UpdateContractParams) (models.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return models.Contract{}, false
	}
	if p.TenantID != nil {
		c.TenantID = *p.TenantID
	}
	if p.PropertyID != nil {
		c.PropertyID = *p.PropertyID
	}
	if p.LandlordID != nil {
		c.LandlordID = *p.LandlordID
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.MonthlyRent != nil {
		c.MonthlyRent = *p.MonthlyRent
	}
	if p.Deposit != nil {
		c.Deposit = *p.Deposit
	}
	if p.Terms != nil {
		c.Terms = p.Terms
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
		s.setPropertyAvailability(c.PropertyID, !c.IsActive)
	}
	s.contracts[id] = c
	return c, true
}

func (s *MemStorage) DeleteContract(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return false
	}
	delete(s.contracts, id)
	s.setPropertyAvailability(c.PropertyID, true)
	return true
}

// setPropertyAvailability must be called with the write lock held. A missing
// property is ignored.
func (s *MemStorage) setPropertyAvailability(propertyID int, available bool) {
	prop, ok := s.properties[propertyID]
	if !ok {
		return
	}
	prop.IsAvailable = available
	s.properties[propertyID] = prop
}

// Payments

func (s *MemStorage) CreatePayment(p models.CreatePaymentParams) models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := p.Status
	if status == "" {
		status = models.PaymentStatusPending
	}
	pay := models.Payment{
		ID:            s.allocID(),
		ContractID:    p.ContractID,
		TenantID:      p.TenantID,
		Amount:        p.Amount,
		DueDate:       p.DueDate,
		PaidDate:      p.PaidDate,
		Status:        status,
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     time.Now(),
	}
	s.payments[pay.ID] = pay
	return pay
}

func (s *MemStorage) GetPayment(id int) (models.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	return p, ok
}

func (s *MemStorage) ListPayments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Payment, 0, len(s.payments))
	for _, id := range sortedIDs(s.payments) {
		out = append(out, s.payments[id])
	}
	return out
}

func (s *MemStorage) UpdatePayment(id int, p models.UpdatePaymentParams) (models.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pay, ok := s.payments[id]
	if !ok {
		return models.Payment{}, false
	}
	if p.ContractID != nil {
		pay.ContractID = *p.ContractID
	}
	if p.TenantID != nil {
		pay.TenantID = *p.TenantID
	}
	if p.Amount != nil {
		pay.Amount = *p.Amount
	}
	if p.DueDate != nil {
		pay.DueDate = *p.DueDate
	}
	if p.PaidDate != nil {
		pay.PaidDate = p.PaidDate
	}
	if p.Status != nil {
		pay.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		pay.PaymentMethod = p.PaymentMethod
	}
	if p.Notes != nil {
		pay.Notes = p.Notes
	}
	s.payments[id] = pay
	return pay, true
}

func (s *MemStorage) DeletePayment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return false
	}
	delete(s.payments, id)
	return true
}

// Users

func (s *MemStorage) CreateUser(p models.CreateUserParams) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == p.Email {
			return models.User{}, ErrEmailTaken
		}
	}
	u := models.User{
		ID:        s.allocID(),
		Name:      p.Name,
		Email:     p.Email,
		Password:  p.Password,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *MemStorage) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *MemStorage) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.users) {
		if s.users[id].Email == email {
			return s.users[id], true
		}
	}
	return models.User{}, false
}
