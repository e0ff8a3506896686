package entity

import "time"

// Customer representa um cliente da loja, com o documento fiscal (CPF/CNPJ)
// como capturado no cadastro — possivelmente sem máscara ou já formatado.
// DefaultBilling/DefaultShipping guardam o ID do endereço padrão; vazio = nenhum.
type Customer struct {
	ID              string
	Email           string
	Firstname       string
	Lastname        string
	TaxVat          string // CPF ou CNPJ bruto do cadastro
	DefaultBilling  string // ID do endereço de cobrança padrão
	DefaultShipping string // ID do endereço de entrega padrão
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
