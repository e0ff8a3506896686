package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound = errors.New("registro não encontrado")

	// ErrHardDeleteNotAllowed: exclusão definitiva de cliente exige autorização
	// explícita (allowHardDelete), nunca um flag ambiente de processo.
	ErrHardDeleteNotAllowed = errors.New("exclusão definitiva de cliente não autorizada")
)
