package ports

import "github.com/aalvaropc/starapp/internal/domain"

type ConfigInitializer interface {
	Init(spec domain.ConfigSpec, force bool) error
}
