package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Paging bounds request pagination parameters.
type Paging struct {
	DefaultPageSize int
	MaxPageSize     int
	DefaultLimit    int
	MaxLimit        int
}

func setPagingDefaults(v *viper.Viper) {
	v.SetDefault("paging.default_page_size", 10)
	v.SetDefault("paging.max_page_size", 50)
	v.SetDefault("paging.default_limit", 10)
	v.SetDefault("paging.max_limit", 50)
}

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		DefaultPageSize: getIntOrDefault(v, "paging.default_page_size", 10),
		MaxPageSize:     getIntOrDefault(v, "paging.max_page_size", 50),
		DefaultLimit:    getIntOrDefault(v, "paging.default_limit", 10),
		MaxLimit:        getIntOrDefault(v, "paging.max_limit", 50),
	}
}

// Validate checks the paging bounds.
func (p *Paging) Validate() error {
	if p.DefaultPageSize < 1 || p.DefaultPageSize > p.MaxPageSize {
		return fmt.Errorf("paging: default_page_size %d outside 1..%d", p.DefaultPageSize, p.MaxPageSize)
	}
	if p.DefaultLimit < 1 || p.DefaultLimit > p.MaxLimit {
		return fmt.Errorf("paging: default_limit %d outside 1..%d", p.DefaultLimit, p.MaxLimit)
	}
	return nil
}

// Hateoas configures link generation.
type Hateoas struct {
	// BaseURL overrides the request derived base of generated hrefs.
	BaseURL string
}

func getHateoasConfig(v *viper.Viper) *Hateoas {
	return &Hateoas{BaseURL: v.GetString("hateoas.base_url")}
}
