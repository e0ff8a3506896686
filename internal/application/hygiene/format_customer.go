package hygiene

import (
	"fmt"
	"strings"

	"github.com/o2ti/brazilian-customer/internal/domain/entity"
	"github.com/o2ti/brazilian-customer/internal/domain/repository"
	"github.com/o2ti/brazilian-customer/pkg/brdoc"
	"github.com/o2ti/brazilian-customer/pkg/logger"
)

// FormatCustomer reconcilia o cadastro de um cliente brasileiro: valida o
// CPF/CNPJ, exige endereço com pelo menos 3 linhas, normaliza telefone/fax e
// promove o endereço aprovado a cobrança/entrega padrão. Endereços reprovados
// são excluídos e a decisão vai para o log de auditoria.
type FormatCustomer struct {
	customers repository.CustomerRepository
	addresses repository.AddressRepository
	changeLog AuditSink
	log       *logger.Logger
}

// NewFormatCustomer constrói o caso de uso.
func NewFormatCustomer(
	customers repository.CustomerRepository,
	addresses repository.AddressRepository,
	changeLog AuditSink,
	log *logger.Logger,
) *FormatCustomer {
	return &FormatCustomer{
		customers: customers,
		addresses: addresses,
		changeLog: changeLog,
		log:       log,
	}
}

// ProcessCustomer decide o destino do cliente:
//   - com cobrança padrão e CPF/CNPJ: reconcilia cada endereço brasileiro;
//   - sem cobrança padrão: promove o primeiro endereço e repete a decisão
//     uma única vez sobre o cliente atualizado;
//   - com cobrança padrão mas sem CPF/CNPJ: nada a fazer (sem auditoria).
//
// Erros devolvidos aqui são inesperados (falha de leitura do repositório) e
// interrompem o lote; toda falha classificada é auditada e engolida.
func (uc *FormatCustomer) ProcessCustomer(customer *entity.Customer) error {
	return uc.process(customer, 0)
}

func (uc *FormatCustomer) process(customer *entity.Customer, depth int) error {
	if customer.DefaultBilling != "" && customer.TaxVat != "" {
		return uc.processAddresses(customer)
	}
	if customer.DefaultBilling == "" {
		return uc.setDefaultAddress(customer, depth)
	}
	// Cobrança padrão sem CPF/CNPJ: cliente fica como está.
	return nil
}

// setDefaultAddress promove o primeiro endereço do cliente a cobrança e
// entrega padrão, persiste e repassa o cliente pela decisão completa.
// O guard de profundidade limita a repetição a um nível: a segunda passada
// sempre enxerga DefaultBilling preenchido.
func (uc *FormatCustomer) setDefaultAddress(customer *entity.Customer, depth int) error {
	if depth > 0 {
		return nil
	}

	list, err := uc.addresses.ListByParent(customer.ID)
	if err != nil {
		return fmt.Errorf("listar endereços do cliente %s: %w", customer.ID, err)
	}
	if len(list) == 0 {
		return nil
	}

	first := list[0]
	customer.DefaultBilling = first.ID
	customer.DefaultShipping = first.ID
	uc.saveDefaultAddress(customer)

	return uc.process(customer, depth+1)
}

// saveDefaultAddress persiste o cliente; falha vira linha de erro na
// auditoria e o lote continua.
func (uc *FormatCustomer) saveDefaultAddress(customer *entity.Customer) {
	if err := uc.customers.Save(customer); err != nil {
		uc.log.Warn().Err(err).Str("customer_id", customer.ID).Msg("falha ao salvar endereço padrão")
		uc.changeLog.Append(false, []string{customer.ID, customer.Email, err.Error()})
	}
}

func (uc *FormatCustomer) processAddresses(customer *entity.Customer) error {
	list, err := uc.addresses.ListByParent(customer.ID)
	if err != nil {
		return fmt.Errorf("listar endereços do cliente %s: %w", customer.ID, err)
	}
	for _, address := range list {
		uc.processAddress(customer, address)
	}
	return nil
}

// processAddress aplica a máquina de estados por endereço, apenas para o
// Brasil: CPF/CNPJ → estrutura do logradouro → telefone → persistência.
// Cada reprovação exclui o endereço (melhor esforço) e encerra o fluxo
// daquele endereço com uma linha de falha na auditoria.
func (uc *FormatCustomer) processAddress(customer *entity.Customer, address *entity.Address) {
	if address.CountryID != entity.CountryBR {
		return
	}

	if !uc.setVatIDInAddress(customer.TaxVat, address) {
		uc.changeLog.Append(false, []string{
			customer.ID, customer.Email,
			"CPF/CNPJ invalid: " + customer.TaxVat,
		})
		return
	}

	if !uc.validateNumberStreet(address) {
		uc.changeLog.Append(false, []string{
			customer.ID, customer.Email,
			"Street Address invalid: " + strings.Join(address.Street, ","),
		})
		return
	}

	address.Telephone, address.Fax = brdoc.FormatPhone(address.Telephone, address.Fax)

	if !uc.saveAddress(address, customer.ID, customer.Email) {
		return
	}

	customer.DefaultBilling = address.ID
	customer.DefaultShipping = address.ID
	uc.saveDefaultAddress(customer)
}

// setVatIDInAddress valida o CPF/CNPJ do cliente e, se válido, grava a versão
// formatada no endereço. Se inválido, exclui o endereço (melhor esforço).
func (uc *FormatCustomer) setVatIDInAddress(taxvat string, address *entity.Address) bool {
	if brdoc.ValidateTaxID(taxvat) {
		address.VatID = brdoc.FormatTaxID(taxvat)
		return true
	}
	if err := uc.addresses.DeleteByID(address.ID); err != nil {
		uc.log.Warn().Err(err).Str("address_id", address.ID).Msg("falha ao excluir endereço com documento inválido")
	}
	return false
}

// validateNumberStreet exige logradouro, número e complemento-ou-bairro
// (mínimo 3 linhas). Reprovado: exclui o endereço (melhor esforço).
func (uc *FormatCustomer) validateNumberStreet(address *entity.Address) bool {
	if len(address.Street) >= 3 {
		return true
	}
	if err := uc.addresses.DeleteByID(address.ID); err != nil {
		uc.log.Warn().Err(err).Str("address_id", address.ID).Msg("falha ao excluir endereço com logradouro inválido")
	}
	return false
}

// saveAddress persiste o endereço já normalizado. Sucesso gera a linha de
// mudança; falha exclui o endereço (melhor esforço) e gera linha de erro.
func (uc *FormatCustomer) saveAddress(address *entity.Address, customerID, email string) bool {
	if err := uc.addresses.Save(address); err != nil {
		if derr := uc.addresses.DeleteByID(address.ID); derr != nil {
			uc.log.Warn().Err(derr).Str("address_id", address.ID).Msg("falha ao excluir endereço após erro de persistência")
		}
		uc.changeLog.Append(false, []string{customerID, email, err.Error()})
		return false
	}
	uc.changeLog.Append(true, []string{customerID, email, address.VatID, address.Telephone})
	return true
}
