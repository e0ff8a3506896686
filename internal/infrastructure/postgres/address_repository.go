package postgres

import (
	"context"
	"fmt"

	"github.com/o2ti/brazilian-customer/internal/domain"
	"github.com/o2ti/brazilian-customer/internal/domain/entity"
	"github.com/o2ti/brazilian-customer/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementação de AddressRepository (usável com pool ou tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// ListByParent lista os endereços do cliente em ordem estável (created_at, id).
func (r *AddressRepo) ListByParent(parentID string) ([]*entity.Address, error) {
	query := `
		SELECT id, parent_id, country_id, street, COALESCE(vat_id, ''), telephone, fax, created_at, updated_at
		FROM customer_addresses WHERE parent_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(
			&a.ID, &a.ParentID, &a.CountryID, &a.Street, &a.VatID,
			&a.Telephone, &a.Fax, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Save persiste o endereço (create-or-update).
func (r *AddressRepo) Save(address *entity.Address) error {
	query := `
		INSERT INTO customer_addresses (id, parent_id, country_id, street, vat_id, telephone, fax, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			country_id = EXCLUDED.country_id,
			street = EXCLUDED.street,
			vat_id = EXCLUDED.vat_id,
			telephone = EXCLUDED.telephone,
			fax = EXCLUDED.fax,
			updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.ParentID, address.CountryID, address.Street,
		address.VatID, address.Telephone, address.Fax, address.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save address: %w", err)
	}
	return nil
}

// DeleteByID exclui um endereço.
func (r *AddressRepo) DeleteByID(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customer_addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
