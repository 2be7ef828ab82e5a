package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// genericProvider is the subset of godotenv this package depends on,
// narrowed to an interface so tests can substitute a fake without reading
// a real file.
type genericProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type godotenvProvider struct{}

func (*godotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) reading env file: %w", err)
	}

	return data, nil
}
