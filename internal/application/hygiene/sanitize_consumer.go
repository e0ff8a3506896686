package hygiene

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/o2ti/brazilian-customer/internal/domain/entity"
	"github.com/o2ti/brazilian-customer/internal/domain/repository"
	"github.com/o2ti/brazilian-customer/pkg/logger"
)

// Conjunto permitido em nomes: alfanumérico ASCII, espaço e as letras
// acentuadas do português. Tudo fora disso é removido antes da transliteração.
var nameAllowed = regexp.MustCompile(`[^a-zA-Z0-9áàâãéèêíìóòôõúùçñÁÀÂÃÉÈÊÍÌÓÒÔÕÚÙÇ ]`)

// asciiFold decompõe (NFD), remove marcas de combinação e recompõe (NFC):
// "João" → "Joao", "ç" → "c".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeConsumer normaliza nome e email do cliente e persiste. Quando a
// persistência falha, o cliente é auditado como erro e, com a exclusão
// habilitada, removido definitivamente do cadastro.
type SanitizeConsumer struct {
	customers repository.CustomerRepository
	changeLog AuditSink
	log       *logger.Logger
}

// NewSanitizeConsumer constrói o caso de uso.
func NewSanitizeConsumer(
	customers repository.CustomerRepository,
	changeLog AuditSink,
	log *logger.Logger,
) *SanitizeConsumer {
	return &SanitizeConsumer{
		customers: customers,
		changeLog: changeLog,
		log:       log,
	}
}

// ProcessCustomer limpa firstname/lastname (remove símbolos, translitera
// acentos para ASCII), usa o firstname como fallback de lastname vazio e
// normaliza o email (minúsculas, sem espaços nas pontas). Em falha de save:
// linha de erro na auditoria e, se allowDelete, exclusão definitiva — sem
// revalidação nem segunda tentativa.
func (uc *SanitizeConsumer) ProcessCustomer(customer *entity.Customer, allowDelete bool) {
	firstname := sanitizeName(customer.Firstname)

	lastname := sanitizeName(customer.Lastname)
	if lastname == "" {
		lastname = firstname
	}

	customer.Firstname = firstname
	customer.Lastname = lastname
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))

	if err := uc.customers.Save(customer); err != nil {
		uc.changeLog.Append(false, []string{customer.ID, customer.Email, err.Error()})
		if allowDelete {
			if derr := uc.customers.Delete(customer.ID, true); derr != nil {
				uc.log.Warn().Err(derr).Str("customer_id", customer.ID).Msg("falha ao excluir cliente não salvável")
			}
		}
	}
}

// sanitizeName remove caracteres fora do conjunto permitido e translitera o
// resultado para ASCII sem acentos.
func sanitizeName(name string) string {
	cleaned := nameAllowed.ReplaceAllString(name, "")
	folded, _, err := transform.String(asciiFold, cleaned)
	if err != nil {
		return cleaned
	}
	return folded
}
