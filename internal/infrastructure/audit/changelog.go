// Package audit grava o log de mudanças da higienização em CSV append-only:
// um arquivo para sucessos e outro para falhas, cada um com cabeçalho fixo
// escrito uma única vez. As linhas são campos unidos por vírgula sem quoting —
// o formato é consumido como está por planilhas legadas e não deve mudar.
package audit

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

const (
	successFile   = "customer-changes.csv"
	successHeader = "Customer Id,Email,VAT ID,Phone\n"

	failureFile   = "customer-errors.csv"
	failureHeader = "Customer Id,Email,Obs\n"
)

// ChangeLog escreve linhas de auditoria em dois destinos, escolhidos pelo
// resultado (sucesso/falha). A escrita é protegida por lock exclusivo de
// arquivo, cobrindo a verificação do cabeçalho e o append: instâncias
// concorrentes do processo nunca intercalam linhas parciais.
type ChangeLog struct {
	dir string
	mu  sync.Mutex
}

// NewChangeLog cria o log apontando para o diretório de exportação.
// O diretório e os arquivos são criados de forma preguiçosa, no primeiro Append.
func NewChangeLog(dir string) *ChangeLog {
	return &ChangeLog{dir: dir}
}

// Append acrescenta uma linha ao destino do resultado indicado. Falhas de I/O
// são engolidas e reportadas como false: o lote nunca aborta por causa do log.
func (c *ChangeLog) Append(isSuccess bool, fields []string) bool {
	header := failureHeader
	fileName := failureFile
	if isSuccess {
		header = successHeader
		fileName = successFile
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return false
	}

	path := filepath.Join(c.dir, fileName)

	// Lock entre processos: cobre a decisão de escrever o cabeçalho e o append.
	fl := flock.New(path + ".lock")
	if err := fl.Lock(); err != nil {
		return false
	}
	defer func() { _ = fl.Unlock() }()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if info.Size() == 0 {
		if _, err := f.WriteString(header); err != nil {
			return false
		}
	}

	line := strings.Join(fields, ",")
	if _, err := f.WriteString(line + "\n"); err != nil {
		return false
	}
	return true
}
