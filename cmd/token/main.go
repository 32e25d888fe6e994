// token emite un JWT firmado con JWT_SECRET para operar la API desde scripts o integraciones.
//
// Uso: go run ./cmd/token --subject bodega-norte --role operator [--minutes 60]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
)

func main() {
	subject := pflag.StringP("subject", "s", "", "sujeto del token (usuario o sistema)")
	role := pflag.StringP("role", "r", jwt.RoleOperator, "admin | operator | viewer")
	minutes := pflag.IntP("minutes", "m", 0, "vigencia en minutos (0 = JWT_EXPIRATION_MINUTES)")
	pflag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "--subject es obligatorio")
		pflag.Usage()
		os.Exit(2)
	}
	if !jwt.ValidRole(*role) {
		fmt.Fprintf(os.Stderr, "Rol inválido: %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
