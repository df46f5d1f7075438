package storage

import (
	"time"

	"kiratakip/internal/models"
)

// Joined views and dashboard aggregation. Everything here is recomputed on
// every call from the live collections; rows whose foreign keys do not
// resolve are omitted from the result rather than reported as errors.

// PropertiesWithDetails returns every property whose landlord still exists,
// joined with that landlord. When an active contract references the property,
// the contract's tenant and the contract's most recent payment (by CreatedAt)
// are attached as well.
func (s *MemStorage) PropertiesWithDetails() []models.PropertyWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PropertyWithDetails, 0, len(s.properties))
	for _, id := range sortedIDs(s.properties) {
		prop := s.properties[id]
		landlord, ok := s.landlords[prop.LandlordID]
		if !ok {
			continue
		}
		detail := models.PropertyWithDetails{Property: prop, Landlord: landlord}
		if contract, ok := s.activeContractForProperty(prop.ID); ok {
			if tenant, ok := s.tenants[contract.TenantID]; ok {
				detail.Tenant = &tenant
			}
			if last, ok := s.lastPaymentForContract(contract.ID); ok {
				detail.LastPayment = &last
			}
		}
		out = append(out, detail)
	}
	return out
}

// activeContractForProperty returns the first active contract referencing the
// property, lowest id first. Uniqueness of active contracts per property is
// an unenforced convention, so the tie-break is arbitrary but stable.
func (s *MemStorage) activeContractForProperty(propertyID int) (models.Contract, bool) {
	for _, id := range sortedIDs(s.contracts) {
		c := s.contracts[id]
		if c.PropertyID == propertyID && c.IsActive {
			return c, true
		}
	}
	return models.Contract{}, false
}

// lastPaymentForContract returns the contract's payment with the latest
// CreatedAt. Ties go to the lowest id.
func (s *MemStorage) lastPaymentForContract(contractID int) (models.Payment, bool) {
	var best models.Payment
	found := false
	for _, id := range sortedIDs(s.payments) {
		p := s.payments[id]
		if p.ContractID != contractID {
			continue
		}
		if !found || p.CreatedAt.After(best.CreatedAt) {
			best = p
			found = true
		}
	}
	return best, found
}

// ContractsWithDetails returns every contract whose tenant, property and
// landlord all still exist. Contracts with any dangling reference are
// omitted; there is no partial view.
func (s *MemStorage) ContractsWithDetails() []models.ContractWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContractWithDetails, 0, len(s.contracts))
	for _, id := range sortedIDs(s.contracts) {
		c := s.contracts[id]
		tenant, ok := s.tenants[c.TenantID]
		if !ok {
			continue
		}
		property, ok := s.properties[c.PropertyID]
		if !ok {
			continue
		}
		landlord, ok := s.landlords[c.LandlordID]
		if !ok {
			continue
		}
		out = append(out, models.ContractWithDetails{
			Contract: c,
			Tenant:   tenant,
			Property: property,
			Landlord: landlord,
		})
	}
	return out
}

// PaymentsWithDetails returns every payment whose tenant, contract and the
// contract's property all still exist.
func (s *MemStorage) PaymentsWithDetails() []models.PaymentWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paymentsWithDetailsLocked()
}

func (s *MemStorage) paymentsWithDetailsLocked() []models.PaymentWithDetails {
	out := make([]models.PaymentWithDetails, 0, len(s.payments))
	for _, id := range sortedIDs(s.payments) {
		p := s.payments[id]
		tenant, ok := s.tenants[p.TenantID]
		if !ok {
			continue
		}
		contract, ok := s.contracts[p.ContractID]
		if !ok {
			continue
		}
		property, ok := s.properties[contract.PropertyID]
		if !ok {
			continue
		}
		out = append(out, models.PaymentWithDetails{
			Payment: p,
			Tenant:  tenant,
			Contract: models.ContractWithProperty{
				Contract: contract,
				Property: property,
			},
		})
	}
	return out
}

// PendingPayments returns joined payments whose status is pending or overdue,
// regardless of due date.
func (s *MemStorage) PendingPayments() []models.PaymentWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PaymentWithDetails, 0)
	for _, p := range s.paymentsWithDetailsLocked() {
		if isOutstanding(p.Status) {
			out = append(out, p)
		}
	}
	return out
}

// OverduePayments returns joined payments whose status is pending or overdue
// AND whose due date has passed. Note the deliberately narrower predicate
// than PendingPayments.
func (s *MemStorage) OverduePayments() []models.PaymentWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	out := make([]models.PaymentWithDetails, 0)
	for _, p := range s.paymentsWithDetailsLocked() {
		if isOutstanding(p.Status) && p.DueDate.Before(now) {
			out = append(out, p)
		}
	}
	return out
}

func isOutstanding(status string) bool {
	return status == models.PaymentStatusPending || status == models.PaymentStatusOverdue
}

// DashboardStats computes the four dashboard numbers. MonthlyIncome sums the
// rent snapshot of every contract still flagged active, with no end-date
// bound, so expired-but-active contracts count.
func (s *MemStorage) DashboardStats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.DashboardStats{TotalTenants: len(s.tenants)}
	for _, prop := range s.properties {
		if !prop.IsAvailable {
			stats.ActiveProperties++
		}
	}
	for _, c := range s.contracts {
		if c.IsActive {
			stats.MonthlyIncome = stats.MonthlyIncome.Add(c.MonthlyRent)
		}
	}
	for _, p := range s.payments {
		if isOutstanding(p.Status) {
			stats.PendingPayments++
		}
	}
	return stats
}
