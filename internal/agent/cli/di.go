package cli

import (
	"errors"
	"time"

	"github.com/IvanChernomyrdin/mesto/internal/agent/api"
)

var errNotSignedIn = errors.New("вход не выполнен: выполните mesto signin")

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = readPassword
	timeNow      = time.Now
)
