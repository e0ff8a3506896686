package repository

import "github.com/o2ti/brazilian-customer/internal/domain/entity"

// AddressRepository define o port de persistência para Address.
// ListByParent devolve os endereços do cliente na ordem do repositório
// (a promoção de endereço padrão usa o primeiro dessa ordem).
type AddressRepository interface {
	ListByParent(parentID string) ([]*entity.Address, error)
	Save(address *entity.Address) error
	DeleteByID(id string) error
}
