package brdoc_test

import (
	"strings"
	"testing"

	"github.com/o2ti/brazilian-customer/pkg/brdoc"
	"github.com/stretchr/testify/assert"
)

// Vetores reais verificados manualmente contra o algoritmo da Receita Federal.
const (
	testCPFValido   = "11144477735"
	testCPFValido2  = "52998224725"
	testCNPJValido  = "11222333000181"
	testCNPJValido2 = "11444777000161"
)

func TestValidateCPF_VetoresValidos(t *testing.T) {
	assert.True(t, brdoc.ValidateCPF(testCPFValido))
	assert.True(t, brdoc.ValidateCPF(testCPFValido2))
}

// TestValidateCPF_SequenciasRepetidas cobre as dez sequências canônicas
// inválidas ("00000000000".."99999999999"), que passariam no cálculo do
// dígito verificador mas são rejeitadas pela Receita.
func TestValidateCPF_SequenciasRepetidas(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		assert.False(t, brdoc.ValidateCPF(cpf), "sequência repetida deve ser inválida: %s", cpf)
	}
}

func TestValidateCPF_DigitoVerificadorErrado(t *testing.T) {
	// Primeiro DV adulterado (posição 9).
	assert.False(t, brdoc.ValidateCPF("11144477745"))
	// Segundo DV adulterado (posição 10).
	assert.False(t, brdoc.ValidateCPF("11144477734"))
}

func TestValidateCPF_ComprimentoErrado(t *testing.T) {
	assert.False(t, brdoc.ValidateCPF(""))
	assert.False(t, brdoc.ValidateCPF("1114447773"))
	assert.False(t, brdoc.ValidateCPF("111444777350"))
	assert.False(t, brdoc.ValidateCPF("1114447773X"))
}

func TestValidateCNPJ_VetoresValidos(t *testing.T) {
	assert.True(t, brdoc.ValidateCNPJ(testCNPJValido))
	assert.True(t, brdoc.ValidateCNPJ(testCNPJValido2))
}

func TestValidateCNPJ_SequenciasRepetidas(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cnpj := strings.Repeat(string(d), 14)
		assert.False(t, brdoc.ValidateCNPJ(cnpj), "sequência repetida deve ser inválida: %s", cnpj)
	}
}

func TestValidateCNPJ_DigitoVerificadorErrado(t *testing.T) {
	assert.False(t, brdoc.ValidateCNPJ("11222333000191"))
	assert.False(t, brdoc.ValidateCNPJ("11222333000182"))
}

func TestValidateCNPJ_ComprimentoErrado(t *testing.T) {
	assert.False(t, brdoc.ValidateCNPJ("1122233300018"))
	assert.False(t, brdoc.ValidateCNPJ("112223330001810"))
}

// TestValidateTaxID_Despacho verifica que o despacho é puramente pelo
// comprimento após remover separadores: 11 → CPF, 14 → CNPJ, outro → falso.
func TestValidateTaxID_Despacho(t *testing.T) {
	assert.True(t, brdoc.ValidateTaxID("111.444.777-35"), "CPF com máscara")
	assert.True(t, brdoc.ValidateTaxID("11.222.333/0001-81"), "CNPJ com máscara")
	assert.True(t, brdoc.ValidateTaxID(testCPFValido), "CPF sem máscara")
	assert.True(t, brdoc.ValidateTaxID(testCNPJValido), "CNPJ sem máscara")

	assert.False(t, brdoc.ValidateTaxID("111.444.777-3"), "10 dígitos")
	assert.False(t, brdoc.ValidateTaxID("123456789012"), "12 dígitos")
	assert.False(t, brdoc.ValidateTaxID(""))
	assert.False(t, brdoc.ValidateTaxID("abc"))
}
