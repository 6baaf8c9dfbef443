package main

import (
	"rentflow/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.AllModels()...)

	g.Execute()
}
