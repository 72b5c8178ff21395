//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/codepilot/codepilot/internal/app"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}
