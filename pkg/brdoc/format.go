package brdoc

// FormatTaxID aplica a máscara de exibição a um CPF ou CNPJ já validado.
// Remove caracteres não numéricos e formata pelo comprimento:
// 11 dígitos → DDD.DDD.DDD-DD, 14 dígitos → DD.DDD.DDD/DDDD-DD.
// Qualquer outro comprimento é devolvido como a sequência de dígitos, sem máscara.
// Não revalida: a validação é responsabilidade de ValidateTaxID.
func FormatTaxID(value string) string {
	d := onlyDigits(value)
	switch len(d) {
	case 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case 14:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	}
	return d
}

// FormatPhone normaliza o par telefone/fax de um endereço.
// Ambos são reduzidos a dígitos. Se o telefone não tem 11 dígitos mas o fax
// tem, os campos trocam de lugar: o fax vira o telefone (com máscara
// (DD)DDDDD-DDDD) e os dígitos do telefone original vão para o fax, sem
// máscara. Em seguida, de forma independente, um telefone original de 11
// dígitos recebe a máscara. São dois passos sequenciais sobre os valores
// originais — não um if/else.
func FormatPhone(rawPhone, rawFax string) (phone, fax string) {
	p := onlyDigits(rawPhone)
	f := onlyDigits(rawFax)
	phone, fax = p, f

	if len(p) != 11 && len(f) == 11 {
		phone = maskPhone(f)
		fax = p
	}
	if len(p) == 11 {
		phone = maskPhone(p)
	}
	return phone, fax
}

// maskPhone formata 11 dígitos como (DD)DDDDD-DDDD.
func maskPhone(d string) string {
	return "(" + d[0:2] + ")" + d[2:7] + "-" + d[7:11]
}
