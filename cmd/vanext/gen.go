package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vanext/internal/build"
	"github.com/vango-dev/vanext/internal/config"
	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/api"
	"github.com/vango-dev/vanext/pkg/openapi"
	"github.com/vango-dev/vanext/pkg/static"
)

func genCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code and documents",
		Long: `Generate the route table or the OpenAPI document.

Types:
  routes      Generate app/routes_gen.go from app/pages
  openapi     Generate the OpenAPI 3.0 document of the users API

Examples:
  vanext gen routes
  vanext gen openapi
  vanext gen openapi --tag Users -o api.json
  vanext gen openapi --upload s3://docs-bucket/api/openapi.json`,
	}

	cmd.AddCommand(
		genRoutesCmd(flags),
		genOpenAPICmd(flags),
	)

	return cmd
}

func genRoutesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Generate routes_gen.go from the pages directory",
		Long: `Scan the pages directory for index.go (func Page) and layout.go
(func Layout) files and write the route table shared by the server and
the wasm client.

The output is deterministic; an unchanged tree leaves the file untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.loadConfig()
			if err != nil {
				return err
			}

			info("Scanning %s...", relTo(cfg.Dir(), cfg.PagesPath()))
			res, err := build.GenerateRoutes(cfg)
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				warn("%s", w)
			}

			rel := relTo(cfg.Dir(), res.File)
			if res.Changed {
				success("Generated %s (%d pages)", rel, res.Pages)
			} else {
				success("%s is up to date (%d pages)", rel, res.Pages)
			}
			return nil
		},
	}
}

// openAPIOptions are the flags of gen openapi.
type openAPIOptions struct {
	output string
	tag    string
	upload string
}

func genOpenAPICmd(flags *globalFlags) *cobra.Command {
	var opts openAPIOptions

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Generate the OpenAPI document of the users API",
		Long: `Generate the OpenAPI 3.0.3 document of the users API and write it,
indented, to dist/openapi.json.

--tag keeps only the operations carrying that tag and the schemas they
reference. --upload also puts the document into an S3 bucket, using the
default AWS credential chain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = cfg.OpenAPIPath()
			} else if !filepath.IsAbs(opts.output) {
				opts.output = filepath.Join(cfg.Dir(), opts.output)
			}
			if opts.tag == "" {
				opts.tag = cfg.OpenAPI.Tag
			}
			if opts.upload == "" {
				opts.upload = cfg.OpenAPI.Upload
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			data, err := generateOpenAPI(ctx, opts.tag)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(opts.output), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(opts.output, data, 0644); err != nil {
				return err
			}
			success("Wrote %s", relTo(cfg.Dir(), opts.output))

			if opts.upload != "" {
				if err := uploadOpenAPI(ctx, cfg, opts.upload, data); err != nil {
					return err
				}
				success("Uploaded %s", opts.upload)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: dist/openapi.json)")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "Keep only operations with this tag")
	cmd.Flags().StringVar(&opts.upload, "upload", "", "Also upload to s3://bucket/key")

	return cmd
}

// generateOpenAPI renders the indented document, narrowed to tag when set.
func generateOpenAPI(ctx context.Context, tag string) ([]byte, error) {
	doc, err := api.Document(ctx, api.DefaultInfo)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		doc = openapi.FilterByTag(doc, tag)
	}
	return openapi.MarshalIndent(doc)
}

func uploadOpenAPI(ctx context.Context, cfg *config.Config, target string, data []byte) error {
	bucket, key, err := static.ParseS3URL(target)
	if err != nil {
		return apperrors.New(apperrors.CodeUploadFailed).Wrap(err)
	}
	client, err := static.NewS3Client(ctx, static.S3Options{
		Region:    cfg.Static.Region,
		Endpoint:  cfg.Static.Endpoint,
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	})
	if err != nil {
		return apperrors.New(apperrors.CodeUploadFailed).Wrap(err)
	}
	if err := static.Upload(ctx, client, bucket, key, data, "application/json"); err != nil {
		return apperrors.New(apperrors.CodeUploadFailed).WithDetail(target).Wrap(err)
	}
	return nil
}
