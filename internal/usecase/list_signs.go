package usecase

import (
	"github.com/aalvaropc/starapp/internal/domain"
)

type ListSigns struct{}

func NewListSigns() *ListSigns {
	return &ListSigns{}
}

func (uc *ListSigns) Execute() []domain.ZodiacEntry {
	return domain.Signs()
}

// Find returns a single sign by identifier; the error is KindNotFound.
func (uc *ListSigns) Find(id string) (domain.ZodiacEntry, error) {
	e, ok := domain.LookupSign(id)
	if !ok {
		return domain.ZodiacEntry{}, &domain.OpError{
			Op:   "signs.find",
			Kind: domain.KindNotFound,
			Err:  domain.ErrNotFound,
		}
	}
	return e, nil
}
