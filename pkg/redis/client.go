package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var pingClient = func(ctx context.Context, c *goredis.Client) error {
	return c.Ping(ctx).Err()
}

// NewClient parses the connection URL, applies the optional password and
// verifies the server is reachable.
func NewClient(url, password string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	if password != "" {
		opts.Password = password
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pingClient(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
