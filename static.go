package vanext

import (
	"context"

	"github.com/vango-dev/vanext/internal/config"
	"github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/static"
)

// PublicSource builds the public file source selected by static.source:
// the public directory, or an S3 bucket. S3 credentials come from
// S3_ACCESS_KEY and S3_SECRET_KEY when set, otherwise from the default AWS
// chain.
func PublicSource(ctx context.Context, cfg *config.Config, getenv func(string) string) (static.Source, error) {
	switch cfg.Static.Source {
	case "", "dir":
		return static.NewDir(cfg.PublicPath()), nil
	case "s3":
		client, err := static.NewS3Client(ctx, static.S3Options{
			Region:    cfg.Static.Region,
			Endpoint:  cfg.Static.Endpoint,
			AccessKey: getenv("S3_ACCESS_KEY"),
			SecretKey: getenv("S3_SECRET_KEY"),
		})
		if err != nil {
			return nil, errors.New(errors.CodeConfigInvalid).WithDetail("static.source s3").Wrap(err)
		}
		return static.NewS3(client, cfg.Static.Bucket, cfg.Static.Prefix), nil
	default:
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("unknown static.source " + cfg.Static.Source)
	}
}
