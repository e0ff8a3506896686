package entity

import "time"

// CountryBR é o único país tratado pela higienização de endereços.
const CountryBR = "BR"

// Address representa um endereço de cliente (ParentID = cliente dono).
// Street guarda as linhas ordenadas do logradouro; para o Brasil a convenção
// é logradouro, número e complemento-ou-bairro, logo no mínimo 3 linhas.
// VatID recebe o CPF/CNPJ formatado quando o endereço é higienizado.
type Address struct {
	ID        string
	ParentID  string
	CountryID string
	Street    []string
	VatID     string
	Telephone string
	Fax       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
