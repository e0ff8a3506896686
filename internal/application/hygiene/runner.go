package hygiene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/o2ti/brazilian-customer/internal/domain/entity"
	"github.com/o2ti/brazilian-customer/internal/domain/repository"
	"github.com/o2ti/brazilian-customer/pkg/logger"
)

// Runner percorre o cadastro inteiro em páginas e entrega um cliente por vez
// ao passo de higienização. Uma página totalmente processada é liberada antes
// da próxima ser buscada. Falhas classificadas já foram auditadas dentro do
// passo; um erro devolvido por fn é inesperado e interrompe o lote.
type Runner struct {
	customers repository.CustomerRepository
	batchSize int
	log       *logger.Logger
}

// NewRunner constrói o runner. batchSize não positivo cai no padrão 100.
func NewRunner(customers repository.CustomerRepository, batchSize int, log *logger.Logger) *Runner {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Runner{customers: customers, batchSize: batchSize, log: log}
}

// Run executa fn para cada cliente, com progresso estruturado no log.
func (r *Runner) Run(fn func(customer *entity.Customer) error) error {
	total, err := r.customers.Count()
	if err != nil {
		return fmt.Errorf("contar clientes: %w", err)
	}

	runID := uuid.New().String()
	log := r.log.With().Str("run_id", runID).Logger()
	log.Info().Int64("total", total).Int("batch_size", r.batchSize).Msg("iniciando processamento em lote")

	processed := 0
	offset := 0
	for {
		page, err := r.customers.ListPage(r.batchSize, offset)
		if err != nil {
			return fmt.Errorf("listar página de clientes (offset %d): %w", offset, err)
		}
		if len(page) == 0 {
			break
		}

		for _, customer := range page {
			log.Debug().
				Str("customer_id", customer.ID).
				Str("email", customer.Email).
				Msg("processando cliente")

			if err := fn(customer); err != nil {
				return fmt.Errorf("cliente %s: %w", customer.ID, err)
			}
			processed++
		}

		log.Info().Int("processed", processed).Int64("total", total).Msg("página concluída")
		offset += len(page)
	}

	log.Info().Int("processed", processed).Msg("processamento em lote concluído")
	return nil
}
