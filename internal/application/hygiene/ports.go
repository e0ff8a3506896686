// Package hygiene contém os casos de uso da higienização de cadastros:
// FormatCustomer (validação/normalização de CPF/CNPJ, endereço e telefone),
// SanitizeConsumer (limpeza de nome/email) e o Runner de processamento em lote.
package hygiene

// AuditSink recebe uma linha de auditoria por resultado. Implementado pelo
// ChangeLog em CSV; devolve false em falha de I/O, nunca erro — o chamador
// segue o lote mesmo sem conseguir auditar.
type AuditSink interface {
	Append(isSuccess bool, fields []string) bool
}
