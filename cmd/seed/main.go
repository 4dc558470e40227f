// seed aplica las migraciones y carga los datos iniciales: los roles de la
// enumeración (admin, customer) y un catálogo de demostración de categorías y
// productos naturistas.
//
// Uso: go run ./cmd/seed
// La conexión se toma de la misma configuración que usa la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/infrastructure/postgres"
	"github.com/jeffersoncargua/Pipeline-LineNatural/pkg/config"
)

const migrationsDir = "internal/infrastructure/postgres/migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer migraciones: %v\n", err)
		os.Exit(1)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sql, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer %s: %v\n", name, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			fmt.Fprintf(os.Stderr, "Aplicar %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Aplicada %s\n", name)
	}

	fmt.Println("Base de datos lista")
}
