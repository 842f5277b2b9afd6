package main

import (
	"deliwer/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the relational backend. The repositories
// use plain gorm; the generated package is for ad-hoc reporting scripts.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/relational/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.AllModels()...)

	g.Execute()
}
