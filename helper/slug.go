package helper

import (
	"context"
	"fmt"

	"coworking_market/repository"

	"github.com/gosimple/slug"
)

func GenerateUniqueAreaSlug(ctx context.Context, areas repository.AreaRepository, name string) (string, error) {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		exists, err := areas.SlugExists(ctx, result)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}

func BaseSlug(name string) string {
	return slug.Make(name)
}
