package repository

import "github.com/o2ti/brazilian-customer/internal/domain/entity"

// CustomerRepository define o port de persistência para Customer.
// Delete exige allowHardDelete explícito: a exclusão definitiva só acontece
// quando o chamador foi autorizado por configuração (--delete=1).
type CustomerRepository interface {
	Count() (int64, error)
	ListPage(limit, offset int) ([]*entity.Customer, error)
	Save(customer *entity.Customer) error
	Delete(id string, allowHardDelete bool) error
}
