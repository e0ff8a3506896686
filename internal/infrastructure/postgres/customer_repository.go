package postgres

import (
	"context"
	"fmt"

	"github.com/o2ti/brazilian-customer/internal/domain"
	"github.com/o2ti/brazilian-customer/internal/domain/entity"
	"github.com/o2ti/brazilian-customer/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Count devolve o total de clientes (para o progresso do lote).
func (r *CustomerRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// ListPage lista uma página de clientes em ordem estável (created_at, id).
func (r *CustomerRepo) ListPage(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, email, firstname, lastname, taxvat,
		       COALESCE(default_billing, ''), COALESCE(default_shipping, ''),
		       created_at, updated_at
		FROM customers ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Email, &c.Firstname, &c.Lastname, &c.TaxVat,
			&c.DefaultBilling, &c.DefaultShipping, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Save persiste o cliente (create-or-update, semântica de save do cadastro).
func (r *CustomerRepo) Save(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, email, firstname, lastname, taxvat, default_billing, default_shipping, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			firstname = EXCLUDED.firstname,
			lastname = EXCLUDED.lastname,
			taxvat = EXCLUDED.taxvat,
			default_billing = EXCLUDED.default_billing,
			default_shipping = EXCLUDED.default_shipping,
			updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Email, customer.Firstname, customer.Lastname,
		customer.TaxVat, customer.DefaultBilling, customer.DefaultShipping, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	return nil
}

// Delete exclui definitivamente um cliente. Recusa sem allowHardDelete.
func (r *CustomerRepo) Delete(id string, allowHardDelete bool) error {
	if !allowHardDelete {
		return domain.ErrHardDeleteNotAllowed
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
