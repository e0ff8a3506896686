// Package brdoc valida e formata documentos fiscais brasileiros (CPF e CNPJ)
// e telefones no padrão nacional. Algoritmos de dígito verificador módulo 11
// conforme Receita Federal. Funções puras, sem I/O.
package brdoc

import "strings"

// Sequências de dígitos repetidos são estruturalmente válidas mas rejeitadas
// pela Receita Federal ("00000000000", "11111111111", ...).
func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCPF valida um CPF de exatamente 11 dígitos (somente dígitos, sem máscara).
// Verifica a lista de sequências repetidas e os dois dígitos verificadores:
// soma ponderada com pesos decrescentes 10..2 (primeiro DV) e 11..2 (segundo DV),
// rev = 11 - soma % 11, com 10 e 11 reduzidos a 0.
func ValidateCPF(cpf string) bool {
	if len(cpf) != 11 || !isDigits(cpf) {
		return false
	}
	if allSameDigits(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	rev := 11 - sum%11
	if rev == 10 || rev == 11 {
		rev = 0
	}
	if rev != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for j := 0; j < 10; j++ {
		sum += int(cpf[j]-'0') * (11 - j)
	}
	rev = 11 - sum%11
	if rev == 10 || rev == 11 {
		rev = 0
	}
	return rev == int(cpf[10]-'0')
}

// ValidateCNPJ valida um CNPJ de exatamente 14 dígitos (somente dígitos, sem máscara).
// Os pesos ciclam 5,4,3,2,9,8,7,6,5,4,3,2 sobre os 12 primeiros dígitos
// (ponteiro decrescente a partir de len-7 que volta a 9 abaixo de 2);
// resultado = 0 se soma % 11 < 2, senão 11 - soma % 11. O segundo dígito
// repete o esquema sobre os 13 primeiros.
func ValidateCNPJ(cnpj string) bool {
	if len(cnpj) != 14 || !isDigits(cnpj) {
		return false
	}
	if allSameDigits(cnpj) {
		return false
	}

	if checkDigitCNPJ(cnpj[:12]) != int(cnpj[12]-'0') {
		return false
	}
	return checkDigitCNPJ(cnpj[:13]) == int(cnpj[13]-'0')
}

// checkDigitCNPJ calcula o dígito verificador para um prefixo de 12 ou 13 dígitos.
func checkDigitCNPJ(digits string) int {
	sum := 0
	pos := len(digits) - 7
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// ValidateTaxID valida um CPF ou CNPJ em formato livre (com ou sem máscara).
// Remove tudo que não for dígito e despacha pelo comprimento resultante:
// 11 → CPF, 14 → CNPJ, qualquer outro → inválido.
func ValidateTaxID(value string) bool {
	document := onlyDigits(value)

	if len(document) == 14 {
		return ValidateCNPJ(document)
	}
	if len(document) == 11 {
		return ValidateCPF(document)
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// onlyDigits deixa somente dígitos 0-9.
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
