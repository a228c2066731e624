// Command api runs the RecipeHub HTTP server.
package main

import (
	"go.uber.org/fx"

	"github.com/recipehub/backend/internal/infrastructure/container"
)

func main() {
	fx.New(container.Module).Run()
}
