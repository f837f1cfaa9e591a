package supabase

import (
	supa "github.com/nedpals/supabase-go"

	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/logger"
)

// Client wraps the Supabase client shared by every repository in this
// package. All persistence goes through PostgREST with the service key;
// row-level security is bypassed on purpose since this is the admin API.
type Client struct {
	supa *supa.Client
	log  *logger.Logger
}

func NewClient(cfg *config.Configuration, log *logger.Logger) *Client {
	client := supa.CreateClient(cfg.Auth.Supabase.BaseURL, cfg.Auth.Supabase.ServiceKey)
	if client == nil {
		log.Fatal("failed to create Supabase client")
	}
	return &Client{supa: client, log: log}
}
