// Package main содержит точку входа консольного клиента Mesto.
//
// Пакет передаёт информацию о версии и дате сборки в CLI-слой приложения.
package main

import "github.com/IvanChernomyrdin/mesto/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
