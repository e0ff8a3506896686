// brcustomer executa as rotinas de higienização do cadastro de clientes:
//
//	brcustomer format-addresses  [--batch-size=N]
//	brcustomer sanitize-consumers [--delete=0|1] [--batch-size=N]
//
// Sai com código 0 ao completar o cadastro inteiro; qualquer erro não
// tratado no nível do lote termina com código diferente de zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/o2ti/brazilian-customer/internal/application/hygiene"
	"github.com/o2ti/brazilian-customer/internal/domain/entity"
	"github.com/o2ti/brazilian-customer/internal/infrastructure/audit"
	"github.com/o2ti/brazilian-customer/internal/infrastructure/postgres"
	"github.com/o2ti/brazilian-customer/pkg/config"
	"github.com/o2ti/brazilian-customer/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	changeLog := audit.NewChangeLog(cfg.Audit.Dir)

	switch command {
	case "format-addresses":
		fs := flag.NewFlagSet("format-addresses", flag.ExitOnError)
		batchSize := fs.Int("batch-size", cfg.Batch.Size, "clientes por página")
		_ = fs.Parse(os.Args[2:])

		formatUC := hygiene.NewFormatCustomer(customerRepo, addressRepo, changeLog, log)
		runner := hygiene.NewRunner(customerRepo, *batchSize, log)

		log.Info().Msg("iniciando o processo de formatação de endereços")
		if err := runner.Run(formatUC.ProcessCustomer); err != nil {
			log.Error().Err(err).Msg("processo de formatação interrompido")
			os.Exit(1)
		}
		log.Info().Msg("processo concluído com sucesso")

	case "sanitize-consumers":
		fs := flag.NewFlagSet("sanitize-consumers", flag.ExitOnError)
		batchSize := fs.Int("batch-size", cfg.Batch.Size, "clientes por página")
		deleteOption := fs.Bool("delete", false, "excluir definitivamente clientes não salváveis")
		_ = fs.Parse(os.Args[2:])

		sanitizeUC := hygiene.NewSanitizeConsumer(customerRepo, changeLog, log)
		runner := hygiene.NewRunner(customerRepo, *batchSize, log)

		log.Info().Bool("delete", *deleteOption).Msg("iniciando o processo de limpeza dos cadastros")
		if err := runner.Run(func(customer *entity.Customer) error {
			sanitizeUC.ProcessCustomer(customer, *deleteOption)
			return nil
		}); err != nil {
			log.Error().Err(err).Msg("processo de limpeza interrompido")
			os.Exit(1)
		}
		log.Info().Msg("processo concluído com sucesso")

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: brcustomer <format-addresses|sanitize-consumers> [opções]")
	fmt.Fprintln(os.Stderr, "  format-addresses    [--batch-size=N]")
	fmt.Fprintln(os.Stderr, "  sanitize-consumers  [--delete=0|1] [--batch-size=N]")
}
