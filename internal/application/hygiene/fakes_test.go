package hygiene_test

import (
	"github.com/o2ti/brazilian-customer/internal/domain"
	"github.com/o2ti/brazilian-customer/internal/domain/entity"
)

// Fakes em memória para os ports de persistência e auditoria.

type fakeCustomerRepo struct {
	customers []*entity.Customer

	saved   []*entity.Customer
	deleted []string

	saveErr   error // devolvido por Save quando definido
	listErr   error
	deleteErr error
}

func (r *fakeCustomerRepo) Count() (int64, error) {
	if r.listErr != nil {
		return 0, r.listErr
	}
	return int64(len(r.customers)), nil
}

func (r *fakeCustomerRepo) ListPage(limit, offset int) ([]*entity.Customer, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if offset >= len(r.customers) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.customers) {
		end = len(r.customers)
	}
	return r.customers[offset:end], nil
}

func (r *fakeCustomerRepo) Save(customer *entity.Customer) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	snapshot := *customer
	r.saved = append(r.saved, &snapshot)
	return nil
}

func (r *fakeCustomerRepo) Delete(id string, allowHardDelete bool) error {
	if !allowHardDelete {
		return domain.ErrHardDeleteNotAllowed
	}
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeAddressRepo struct {
	byParent map[string][]*entity.Address

	saved   []*entity.Address
	deleted []string

	saveErr error
	listErr error
}

func (r *fakeAddressRepo) ListByParent(parentID string) ([]*entity.Address, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.byParent[parentID], nil
}

func (r *fakeAddressRepo) Save(address *entity.Address) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	snapshot := *address
	r.saved = append(r.saved, &snapshot)
	return nil
}

func (r *fakeAddressRepo) DeleteByID(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type auditEntry struct {
	success bool
	fields  []string
}

type fakeAudit struct {
	entries []auditEntry
}

func (a *fakeAudit) Append(isSuccess bool, fields []string) bool {
	a.entries = append(a.entries, auditEntry{success: isSuccess, fields: fields})
	return true
}

func (a *fakeAudit) successes() []auditEntry {
	var out []auditEntry
	for _, e := range a.entries {
		if e.success {
			out = append(out, e)
		}
	}
	return out
}

func (a *fakeAudit) failures() []auditEntry {
	var out []auditEntry
	for _, e := range a.entries {
		if !e.success {
			out = append(out, e)
		}
	}
	return out
}
